package handler

import (
	"net/http"
	"sync"
	"zonecast/config"
	"zonecast/di"
	"zonecast/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves the API from a serverless entry point. The dependency graph is
// built on the first request and reused, so sessions live as long as the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitFromConfig(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
