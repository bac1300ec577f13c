package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/chemctl/internal/absorb"
)

// AbsorptionConfig parameterizes one absorption column sizing run.
type AbsorptionConfig struct {
	Gas            string  `toml:"gas"`
	TemperatureK   float64 `toml:"temperature_k"`
	PressureBar    float64 `toml:"pressure_bar"`
	HenryStandard  float64 `toml:"henry_standard"`
	HenryTempCoeff float64 `toml:"henry_temperature_dependence"`
	GasInletPPM    float64 `toml:"gas_inlet_ppm"`
	GasOutletPPM   float64 `toml:"gas_outlet_ppm"`
	LiquidInletPPM float64 `toml:"liquid_inlet_ppm"`
	GasMolarWeight float64 `toml:"gas_molar_weight"`
	GasInflowM3H   float64 `toml:"gas_inflow_m3h"`
}

// ServiceConfig parameterizes the chemctl HTTP design service.
type ServiceConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func LoadAbsorptionConfig(path string) (AbsorptionConfig, error) {
	var cfg AbsorptionConfig
	if err := loadToml(path, &cfg); err != nil {
		return AbsorptionConfig{}, err
	}
	if cfg.Gas == "" {
		cfg.Gas = "solute"
	}
	if err := ValidateAbsorptionConfig(cfg); err != nil {
		return AbsorptionConfig{}, err
	}
	return cfg, nil
}

func LoadServiceConfig(path string) (ServiceConfig, error) {
	var cfg ServiceConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServiceConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "chemctl"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateAbsorptionConfig(cfg AbsorptionConfig) error {
	if strings.TrimSpace(cfg.Gas) == "" {
		return fmt.Errorf("absorption config missing gas name")
	}
	if cfg.TemperatureK <= 0 {
		return fmt.Errorf("absorption config temperature_k must be positive")
	}
	if cfg.PressureBar <= 0 {
		return fmt.Errorf("absorption config pressure_bar must be positive")
	}
	if cfg.GasInletPPM <= 0 {
		return fmt.Errorf("absorption config gas_inlet_ppm must be positive")
	}
	if cfg.GasOutletPPM < 0 || cfg.GasOutletPPM >= cfg.GasInletPPM {
		return fmt.Errorf("absorption config gas_outlet_ppm must sit below gas_inlet_ppm")
	}
	return nil
}

// Input converts the run file into absorption calculator parameters.
func (cfg AbsorptionConfig) Input() absorb.Input {
	return absorb.Input{
		Temperature:    cfg.TemperatureK,
		Pressure:       cfg.PressureBar,
		HenryStandard:  cfg.HenryStandard,
		HenryTempCoeff: cfg.HenryTempCoeff,
		GasInlet:       cfg.GasInletPPM,
		GasOutlet:      cfg.GasOutletPPM,
		LiquidInlet:    cfg.LiquidInletPPM,
		GasMolarWeight: cfg.GasMolarWeight,
		GasInflow:      cfg.GasInflowM3H,
	}
}
