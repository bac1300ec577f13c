package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/chemctl/internal/config"
	"github.com/danmuck/chemctl/internal/observability"
	"github.com/danmuck/chemctl/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to the service config file")
	addr := flag.String("addr", "", "listen address (overrides the config file)")
	flag.Parse()

	if err := run(*cfgPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "chemctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, addrOverride string) error {
	cfg := config.ServiceConfig{Name: "chemctl", Addr: ":8080"}
	if cfgPath != "" {
		loaded, err := config.LoadServiceConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if addrOverride != "" {
		cfg.Addr = addrOverride
	}

	observability.InitLogger(cfg.Name)
	return server.New(cfg).Serve()
}
