// Package pprofserver exposes the runtime profiles of the web server on a separate, loopback-only listener.
package pprofserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/manosdvd/agency/internal/errors"
)

var ErrNotLoopback = errors.NewSentinel("pprof address must be a loopback address")

func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

// Launch starts a pprof server listening on addr until ctx is done. It returns the address it listens on, which
// differs from addr when addr asks for port 0.
//
// Only loopback addresses such as localhost:6060 or [::1]:6060 are accepted so that the profiles are never exposed
// to the world.
func Launch(ctx context.Context, addr string, logger *slog.Logger) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "", errors.Wrap(err, "split pprof address", slog.String("addr", addr))
	}
	if !isLoopback(host) {
		return "", errors.Wrap(ErrNotLoopback, "check pprof address", slog.String("host", host))
	}

	var listener net.Listener
	if listener, err = net.Listen("tcp", addr); err != nil {
		return "", errors.Wrap(err, "pprof listen")
	}

	mux := http.NewServeMux()
	Handle(mux)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() {
		if serveErr := srv.Serve(listener); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.LogAttrs(ctx, slog.LevelError, "pprof server stopped", errors.SlogError(serveErr))
		}
	}()

	bound := listener.Addr().String()
	logger.LogAttrs(ctx, slog.LevelInfo, "starting pprof server", slog.String("pprofAddr", bound))
	return bound, nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
