package addon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vixstremio/vixstremio/log"
)

const shutdownTimeout = 10 * time.Second

// NewServer wraps handler in an http.Server listening on host:port.
func NewServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
}

// ManifestURL is the install URL printed at startup.
func ManifestURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/manifest.json", port)
}

// Serve runs server until ctx is cancelled, then drains in-flight requests.
func Serve(ctx context.Context, server *http.Server) error {
	errs := make(chan error, 1)
	go func() {
		log.Infof("addon listening on %s", server.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
