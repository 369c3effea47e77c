// Command lodgenet builds the lodge network for a year cutoff and answers
// node, degree, component and reachability queries from the terminal or
// over HTTP.
package main

import (
	"os"

	"github.com/katalvlaran/lodgenet/internal/config"
	"github.com/katalvlaran/lodgenet/internal/logger"
)

func main() {
	cfg := config.Load(".env")
	log := logger.SetupWith(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error("lodgenet_failed", "err", err)
		os.Exit(1)
	}
}
