// Package proxy forwards /api/* traffic from the browser app to the PRF
// backend origin, preserving the request path. This replaces the dev-server
// proxy the SPA relied on during development and gives production deployments
// a same-origin /api surface.
package proxy

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/prf-platform/prfweb/internal/gateway/responses"
	"github.com/prf-platform/prfweb/internal/logger"
)

// New creates a reverse proxy that rewrites requests onto the backend origin.
// The incoming path (including the /api prefix) is kept as-is.
func New(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
			// SetURL joins target path and request path; the backend serves
			// /api/* at its root so keep the original path untouched
			r.Out.URL.Path = r.In.URL.Path
			r.Out.URL.RawPath = r.In.URL.RawPath
			r.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			reqLogger := logger.ContextRequestLogger(r.Context())
			reqLogger.Error("backend unreachable",
				slog.String("component", "proxy"),
				slog.String("target", target.String()),
				slog.String("error", err.Error()),
			)
			responses.RespondWithError(w, r, http.StatusBadGateway, "The service is temporarily unavailable. Please try again later.")
		},
	}
}
