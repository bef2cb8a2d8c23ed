// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/handlers"
	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/voting"
)

// NewRouter registers every endpoint on a fresh ServeMux. gatherer backs
// /metrics; nil uses the default Prometheus gatherer.
func NewRouter(svc *voting.Service, cfg cliparse.Config, gatherer prometheus.Gatherer) *http.ServeMux {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(svc, cfg)
	candidateHandler := handlers.NewCandidateHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Voter flow
	mux.HandleFunc("POST /login", middleware.WithLogging(voterHandler.Login))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.CastVote))

	// Results dashboard
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Front-end
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login.html", http.StatusFound)
	})
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))

	return mux
}
