package middleware

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccessLog writes one line per request to out, tagged with the request id.
func AccessLog(out io.Writer) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithUTC(true),
		ginlog.WithWriter(out),
		ginlog.WithSkipPath([]string{"/health", "/metrics"}),
		ginlog.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().Str("request_id", RequestIDFrom(c)).Logger()
		}),
	)
}
