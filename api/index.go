package handler

import (
	"deskbooker/config"
	"deskbooker/di"
	"deskbooker/shared/logger"
	transport "deskbooker/transport/http"
	"net/http"
	"sync"
)

var (
	server   *transport.HTTP
	initOnce sync.Once
)

// Handler serves the API from a serverless runtime, building the dependency graph on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)
		logger.SetLogLevel(cfg)

		server, _ = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
