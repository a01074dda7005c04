package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogger asocia un logger con request_id al contexto de la petición,
// de modo que repositorio y handlers emitan errores correlacionados vía
// log.Ctx, y registra el resultado de cada petición.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	requestID := uuid.New().String()

	logger := log.With().Str("request_id", requestID).Logger()
	ctx := logger.WithContext(c.Request.Context())
	c.Request = c.Request.WithContext(ctx)

	c.Next()

	log.Ctx(c.Request.Context()).Info().
		Str("method", c.Request.Method).
		Str("endpoint", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Int64("latency", time.Since(start).Milliseconds()).
		Msg("Request processed")
}
