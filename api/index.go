package handler

import (
	"easybooking/config"
	"easybooking/di"
	"easybooking/shared/logger"
	"net/http"
	"sync"
)

var (
	app  *di.Application
	once sync.Once
)

// Handler is the serverless entry point. The application is built once per
// instance and serves requests without a listener or the background sweep.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
