package main

import (
	"zonecast/config"
	"zonecast/di"
	"zonecast/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitFromConfig(cfg)

	http := di.InitializeService()
	http.Serve()
}
