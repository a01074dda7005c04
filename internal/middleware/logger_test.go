package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerAttachesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger)
	r.GET("/fallo", func(c *gin.Context) {
		// mismo patrón que usan repositorio y handlers ante un error
		log.Ctx(c.Request.Context()).Error().Str("component", "FindBySlug").Msg("fallo forzado")
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fallo", nil))

	out := buf.String()
	assert.Contains(t, out, "request_id", "el logger del contexto debe llevar el request_id")
	assert.Contains(t, out, "fallo forzado", "el error del handler debe emitirse de verdad")
	assert.Contains(t, out, "Request processed")
}
