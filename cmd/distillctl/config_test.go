package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/chemctl/internal/testutil/testlog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distill.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const fullRunFile = `
temperature_k = 350.0
xb = 0.1
xf = 0.5
xd = 0.99
q = 0.5
reflux_factor = 1.1
diagram_path = "diagram.svg"

[[components]]
name = "benzene"
a = 4.35576
b = 1175.581
c = -2.071

[[components]]
name = "toluene"
a = 4.02832
b = 1268.636
c = -56.199
`

func TestLoadRunConfig(t *testing.T) {
	testlog.Start(t)

	cfg, err := loadRunConfig(writeFile(t, fullRunFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.Temperature != 350 || cfg.Input.Q != 0.5 || cfg.Input.RefluxFactor != 1.1 {
		t.Fatalf("unexpected input: %+v", cfg.Input)
	}
	if cfg.Names != [2]string{"benzene", "toluene"} {
		t.Fatalf("unexpected component names: %+v", cfg.Names)
	}
	if cfg.Input.Antoine[1].B != 1268.636 {
		t.Fatalf("unexpected antoine data: %+v", cfg.Input.Antoine)
	}
	if cfg.DiagramPath != "diagram.svg" {
		t.Fatalf("unexpected diagram path: %q", cfg.DiagramPath)
	}
}

func TestLoadRunConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	testlog.Start(t)

	cfg, err := loadRunConfig(writeFile(t, `
temperature_k = 350.0
xb = 0.1
xf = 0.5
xd = 0.99

[[components]]
a = 4.35576
b = 1175.581
c = -2.071

[[components]]
a = 4.02832
b = 1268.636
c = -56.199
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.Q != 1 {
		t.Fatalf("absent q must default to saturated liquid, got %g", cfg.Input.Q)
	}
	if cfg.Input.RefluxFactor != 1.2 {
		t.Fatalf("absent reflux_factor must keep its default, got %g", cfg.Input.RefluxFactor)
	}
	if cfg.Names != [2]string{"component-1", "component-2"} {
		t.Fatalf("unnamed components must get placeholders, got %+v", cfg.Names)
	}
}

func TestLoadRunConfigRequiresTwoComponents(t *testing.T) {
	testlog.Start(t)

	_, err := loadRunConfig(writeFile(t, `
temperature_k = 350.0

[[components]]
a = 4.35576
b = 1175.581
c = -2.071
`))
	if err == nil || !strings.Contains(err.Error(), "expected 2 [[components]]") {
		t.Fatalf("expected component count failure, got %v", err)
	}
}
