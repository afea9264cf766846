package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lkael/arbor/internal/cache"
	"github.com/lkael/arbor/internal/store"
)

// ServeCmd runs the local HTTP daemon serving the cached tree.
type ServeCmd struct {
	Port int           `short:"p" default:"2780" help:"Port for the HTTP server."`
	TTL  time.Duration `default:"30s" help:"How long a served tree may be stale."`
}

func setupHTTPMux(s *store.Store, c *cache.Cache) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tree", func(w http.ResponseWriter, r *http.Request) {
		payload, err := c.Get(func() ([]byte, error) {
			root, err := s.LoadTree()
			if err != nil {
				return nil, err
			}
			return treeJSON(root)
		})
		if err != nil {
			slog.Error("tree rebuild failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	})

	mux.HandleFunc("POST /api/refresh", func(w http.ResponseWriter, r *http.Request) {
		c.Invalidate()
		slog.Debug("cache invalidated")
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

// Run starts the daemon: tree endpoint + cache on one local port.
func (cmd *ServeCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	c := cache.New(cmd.TTL)
	mux := setupHTTPMux(s, c)
	addr := fmt.Sprintf("127.0.0.1:%d", cmd.Port)
	slog.Info("daemon listening", "addr", addr, "ttl", cmd.TTL)
	return http.ListenAndServe(addr, mux)
}
