package handler

import (
	"net/http"
	"sync"

	"tourbook/config"
	"tourbook/di"
	"tourbook/shared/logger"
	"tourbook/shared/timezone"
	transport "tourbook/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless function. The dependency graph is
// built on the first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
		server.Setup()
	})

	server.ServeHTTP(w, r)
}
