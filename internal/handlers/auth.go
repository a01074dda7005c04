package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panel_catalogo/internal/auth"
	"panel_catalogo/internal/config"
	"panel_catalogo/internal/middleware"
)

// una semana, igual que la sesión original del panel
const sessionMaxAge = 60 * 60 * 24 * 7

type AuthHandler struct {
	authenticator auth.Authenticator
}

func NewAuthHandler(authenticator auth.Authenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

func (h *AuthHandler) Login(c *gin.Context) {
	creds := auth.Credentials{
		Username: c.PostForm("userName"),
		Password: c.PostForm("password"),
	}

	if err := h.authenticator.Authenticate(creds); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Credenciales inválidas"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, middleware.SessionMarker,
		sessionMaxAge, "/", "", config.IsProduction(), true)
	c.Redirect(http.StatusFound, "/admin/products")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.Redirect(http.StatusFound, "/login")
}
