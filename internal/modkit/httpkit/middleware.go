package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"github-activity/internal/platform/net/middleware"
)

// BatchTimeout bounds one API request; a full batch is fetched sequentially
const BatchTimeout = 60 * time.Second

// CommonStack is the middleware for the versioned API. CORS is appended by the caller
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 2 * time.Second}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(BatchTimeout),
	}
}
