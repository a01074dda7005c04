package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName es el nombre de la cookie de sesión del panel.
	SessionCookieName = "session"
	// SessionMarker es el valor opaco que representa una sesión de admin.
	SessionMarker = "admin-session"
)

// RequireAdminSession protege toda ruta bajo /admin: sin el marcador exacto
// en la cookie, redirige al login.
func RequireAdminSession(c *gin.Context) {
	value, err := c.Cookie(SessionCookieName)
	if err != nil || value != SessionMarker {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// RedirectIfAuthenticated evita mostrar el login a un admin ya autenticado.
func RedirectIfAuthenticated(c *gin.Context) {
	if value, err := c.Cookie(SessionCookieName); err == nil && value == SessionMarker {
		c.Redirect(http.StatusFound, "/admin/products")
		c.Abort()
		return
	}
	c.Next()
}
