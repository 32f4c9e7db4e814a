package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/clients/wmfl_client"
	"github.com/wmfl-league/leagueadmin/go/internal/httputil"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(config *Config, services *Services) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           h2c.NewHandler(newHandler(services), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func newHandler(services *Services) http.Handler {
	r := mux.NewRouter()

	registerServices(r, services)
	setupHealthCheck(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-User-Id"},
		ExposedHeaders: []string{httputil.RequestIDHeader},
		MaxAge:         86400,
	})

	return httputil.WithRequestID(httputil.AccessLog(c.Handler(r)))
}

func registerServices(r *mux.Router, services *Services) {
	r.Handle(wmfl_client.TeamsPath, services.Teams)
	r.Handle(wmfl_client.ImportPath, services.Import)
	r.Handle(wmfl_client.SyncPath, services.Sync)
}

func setupHealthCheck(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	}).Methods(http.MethodGet)
}
