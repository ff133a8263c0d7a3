// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP lookup service.
//
// The service answers GET /lookup?q=TERM with a JSON array of the strokes
// that produce TERM. All requests share one immutable [steno.IndexSet] built
// before the server starts.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/ianlewis/go-steno"
	"github.com/ianlewis/go-steno/internal/config"
)

// Server is the lookup server.
type Server struct {
	cfg config.ServerConfig
	set *steno.IndexSet
	log *slog.Logger
}

// New returns a new Server serving lookups from set.
func New(cfg config.ServerConfig, set *steno.IndexSet, logger *slog.Logger) *Server {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Server{
		cfg: cfg,
		set: set,
		log: logger,
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	h := &handler{set: s.set}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.root)
	mux.Handle("GET /lookup", ETag(http.HandlerFunc(h.lookup)))

	return Chain(
		RequestID,
		Logger(s.log),
		Recovery(s.log),
		Limit(s.cfg.Workers),
	)(mux)
}

// Run listens on the configured address and serves requests until ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves requests on ln until ctx is cancelled. In-flight requests are
// given the configured shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:  s.Handler(),
		ErrorLog: slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	s.log.Info("serving lookups",
		slog.String("addr", ln.Addr().String()),
		slog.Int("workers", s.cfg.Workers),
		slog.Int("dictionaries", s.set.Len()),
		slog.Int("translations", s.set.Translations()),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", slog.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		_ = srv.Close()
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("shutting down: %w", shutdownErr)
	}
	return nil
}
