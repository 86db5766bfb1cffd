package handler

import (
	"net/http"
	"sync"

	"rental/config"
	"rental/di"
	"rental/shared/logger"
	rentalHTTP "rental/transport/http"
)

var (
	app  *rentalHTTP.HTTP
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.UseJSONOutput(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
