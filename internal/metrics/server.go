// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/slotguard/internal/httpserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "metrics")

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server, serving the metrics
// of the given gatherer on /metrics and a liveness probe on /healthz.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return &Server{
		server: httpserver.New(
			httpserver.Address(address),
			httpserver.Handler(router),
			httpserver.WithLogger("metrics", logger),
		),
	}
}

// Start will start the metrics server, returning once it listens.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Info("metrics server started", "url", fmt.Sprintf("http://%s/metrics", s.server.Address()))
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return errors.New("metrics server exited unexpectedly")
	}
}

// Address returns the address the metrics server listens on.
func (s *Server) Address() string {
	return s.server.Address()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()
	select {
	case err := <-s.done:
		return err
	case <-time.NewTimer(30 * time.Second).C:
		return errors.New("metrics server exit timeout")
	}
}
