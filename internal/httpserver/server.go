// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package httpserver runs an HTTP server until its context is canceled.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	address    string
	addressSet chan struct{}
	optional   optionalSettings
}

// New creates a new HTTP server with the given options.
func New(options ...Option) *Server {
	optional := newOptionalSettings(options)
	return &Server{
		address:    optional.address,
		addressSet: make(chan struct{}),
		optional:   optional,
	}
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server listens, and
// the done channel receives the server exit error, which is nil
// if the server exited because ctx was canceled.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		done <- fmt.Errorf("listening on %s: %w", s.address, err)
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)

	done <- s.serve(ctx, listener, ready)
}

// serve serves on the listener until ctx is canceled or serving fails.
func (s *Server) serve(ctx context.Context, listener net.Listener,
	ready chan<- struct{}) (err error) {
	server := &http.Server{
		Handler:           s.optional.handler,
		ReadTimeout:       s.optional.readTimeout,
		ReadHeaderTimeout: s.optional.readHeaderTimeout,
	}

	serveDone := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-serveDone:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.optional.logger.Error("failed shutting down server",
				"server", s.optional.serverName, "err", err)
		}
	}()

	s.optional.logger.Info("http server listening",
		"server", s.optional.serverName, "address", listener.Addr().String())
	close(ready)

	err = server.Serve(listener)
	close(serveDone)
	<-shutdownDone

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Address returns the address the server listens on.
// It blocks until the server is listening or failed to listen.
func (s *Server) Address() string {
	<-s.addressSet
	return s.address
}
