package main

import (
	"flag"
	"fmt"
	"os"

	"FigureEditor/internal/config"
	"FigureEditor/internal/ui"
)

func main() {
	confPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *confPath != "" {
		var err error
		if cfg, err = config.LoadFile(*confPath); err != nil {
			fmt.Fprintf(os.Stderr, "figure-editor: %v\n", err)
			os.Exit(1)
		}
	}

	log := config.NewLogger(cfg.Log, nil)
	if keys := cfg.Undecoded(); len(keys) > 0 {
		log.Warn("unknown configuration keys ignored", "keys", keys)
	}
	log.Info("starting", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)

	if err := ui.RunApp(cfg, log); err != nil {
		log.Error("cannot start", "error", err)
		os.Exit(1)
	}
}
