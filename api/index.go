package handler

import (
	"agendador/config"
	"agendador/di"
	"agendador/shared/logger"
	"net/http"
	"sync"

	transport "agendador/transport/http"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler serves every request through one lazily built service.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
