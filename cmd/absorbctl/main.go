package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/chemctl/internal/absorb"
	"github.com/danmuck/chemctl/internal/config"
	"github.com/danmuck/chemctl/internal/logging"
	"github.com/danmuck/chemctl/internal/render"
)

func main() {
	logging.ConfigureRuntime()

	cfgPath := flag.String("config", "absorb.toml", "path to the absorption run file")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "absorbctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.LoadAbsorptionConfig(cfgPath)
	if err != nil {
		return err
	}

	result, err := absorb.Size(cfg.Input())
	if err != nil {
		return err
	}
	log.Debug().
		Str("gas", cfg.Gas).
		Float64("henry_constant", result.HenryConstant).
		Float64("minimum_solvent_flow", result.MinSolventFlow).
		Msg("sizing complete")

	return render.WriteAbsorptionSummary(os.Stdout, render.AbsorptionSummary{
		Temperature:    cfg.TemperatureK,
		Pressure:       cfg.PressureBar,
		HenryConstant:  result.HenryConstant,
		GasInlet:       cfg.GasInletPPM,
		GasOutlet:      cfg.GasOutletPPM,
		GasInflow:      cfg.GasInflowM3H,
		MinSolventFlow: result.MinSolventFlow,
	})
}
