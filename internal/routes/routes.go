package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"panel_catalogo/internal/handlers"
	"panel_catalogo/internal/handlers/admin"
	"panel_catalogo/internal/middleware"
	"panel_catalogo/internal/models"
)

func RegisterRoutes(r *gin.Engine, authHandler *handlers.AuthHandler, productHandler *admin.ProductHandler) {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestLogger)

	// Login
	r.GET("/login", middleware.RedirectIfAuthenticated, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Inicia sesión"})
	})
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Zona de administración, protegida por la cookie de sesión
	adminGroup := r.Group("/admin", middleware.RequireAdminSession)
	adminGroup.GET("/products", productHandler.List)
	adminGroup.POST("/products", productHandler.Create)
	adminGroup.POST("/products/:id", productHandler.Update)
	adminGroup.POST("/products/:id/delete", productHandler.Delete)

	// Tabla fija de categorías para el formulario del panel
	adminGroup.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Categories)
	})
}
