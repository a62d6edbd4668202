package main

import (
	"flag"
	"log"

	"github.com/Raam751/ClassPulse/internal/app"
	"github.com/Raam751/ClassPulse/internal/config"
	"github.com/Raam751/ClassPulse/pkg/configwatcher"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	go configwatcher.WatchConfig(*configPath+"/config.yaml", application.Reload)

	if err := application.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
