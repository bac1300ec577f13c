package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/chemctl/internal/distill"
	"github.com/danmuck/chemctl/internal/logging"
	"github.com/danmuck/chemctl/internal/render"
	"github.com/danmuck/chemctl/internal/vle"
)

func main() {
	logging.ConfigureRuntime()

	cfgPath := flag.String("config", "distill.toml", "path to the distillation run file")
	diagram := flag.String("diagram", "", "write the McCabe-Thiele diagram SVG to this path (overrides the run file)")
	flag.Parse()

	if err := run(*cfgPath, *diagram); err != nil {
		fmt.Fprintf(os.Stderr, "distillctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, diagramOverride string) error {
	cfg, err := loadRunConfig(cfgPath)
	if err != nil {
		return err
	}
	if diagramOverride != "" {
		cfg.DiagramPath = diagramOverride
	}

	result, err := distill.Design(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug().
		Str("light_component", cfg.Names[0]).
		Str("heavy_component", cfg.Names[1]).
		Float64("alpha", result.Alpha).
		Int("stages", result.Stages).
		Msg("design complete")

	if err := render.WriteDistillationSummary(os.Stdout, render.DistillationSummary{
		Temperature:   cfg.Input.Temperature,
		Xb:            cfg.Input.Xb,
		Xf:            cfg.Input.Xf,
		Xd:            cfg.Input.Xd,
		FeedQuality:   cfg.Input.Q,
		Alpha:         result.Alpha,
		MinimumReflux: result.MinimumReflux,
		RefluxRatio:   result.RefluxRatio,
		Stages:        result.Stages,
		FeedStage:     result.FeedStage,
	}); err != nil {
		return err
	}

	if cfg.DiagramPath == "" {
		return nil
	}
	return writeDiagram(cfg.DiagramPath, cfg.Input, result)
}

func writeDiagram(path string, in distill.Input, result distill.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	defer f.Close()

	err = render.WriteDiagram(f, render.Diagram{
		Curve:      vle.Curve{Alpha: result.Alpha},
		Rectifying: result.Rectifying,
		Stripping:  result.Stripping,
		UpperBreak: result.UpperBreak,
		Xb:         in.Xb,
		Xd:         in.Xd,
		Staircase:  result.Staircase,
	})
	if err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	log.Info().Str("path", path).Msg("diagram written")
	return nil
}
