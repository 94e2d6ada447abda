package api

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"hellod/internal/config"
)

// CompressionMiddleware gzips response bodies for clients whose
// Accept-Encoding allows it. Other clients get the body untouched.
func CompressionMiddleware(cfg config.CompressionConfig) (func(http.Handler) http.Handler, error) {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }, nil
	}

	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(cfg.MinSize),
		gzhttp.CompressionLevel(cfg.Level),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure compression: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
