package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/chemctl/internal/distill"
	"github.com/danmuck/chemctl/internal/vle"
)

// distillctl run-file key mapping onto design input.
type fileConfig struct {
	TemperatureK float64     `toml:"temperature_k"`
	Xb           float64     `toml:"xb"`
	Xf           float64     `toml:"xf"`
	Xd           float64     `toml:"xd"`
	Q            float64     `toml:"q"`
	RefluxFactor float64     `toml:"reflux_factor"`
	Components   []component `toml:"components"`
	DiagramPath  string      `toml:"diagram_path"`
}

type component struct {
	Name string  `toml:"name"`
	A    float64 `toml:"a"`
	B    float64 `toml:"b"`
	C    float64 `toml:"c"`
}

type runConfig struct {
	Input       distill.Input
	Names       [2]string
	DiagramPath string
}

func defaultRunConfig() runConfig {
	return runConfig{
		Input: distill.Input{
			Q:            1,
			RefluxFactor: 1.2,
		},
	}
}

// distillctl loader for TOML run files with default overlay.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load distillation config: %w", err)
	}

	if meta.IsDefined("temperature_k") {
		cfg.Input.Temperature = raw.TemperatureK
	}
	if meta.IsDefined("xb") {
		cfg.Input.Xb = raw.Xb
	}
	if meta.IsDefined("xf") {
		cfg.Input.Xf = raw.Xf
	}
	if meta.IsDefined("xd") {
		cfg.Input.Xd = raw.Xd
	}
	if meta.IsDefined("q") {
		cfg.Input.Q = raw.Q
	}
	if meta.IsDefined("reflux_factor") {
		cfg.Input.RefluxFactor = raw.RefluxFactor
	}
	if meta.IsDefined("diagram_path") {
		cfg.DiagramPath = raw.DiagramPath
	}

	if len(raw.Components) != 2 {
		return runConfig{}, fmt.Errorf(
			"load distillation config: expected 2 [[components]] entries, got %d",
			len(raw.Components),
		)
	}
	for i, comp := range raw.Components {
		cfg.Input.Antoine[i] = vle.Antoine{A: comp.A, B: comp.B, C: comp.C}
		cfg.Names[i] = comp.Name
		if cfg.Names[i] == "" {
			cfg.Names[i] = fmt.Sprintf("component-%d", i+1)
		}
	}

	return cfg, nil
}
