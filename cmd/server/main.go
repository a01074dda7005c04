package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"panel_catalogo/internal/auth"
	"panel_catalogo/internal/cache"
	"panel_catalogo/internal/config"
	"panel_catalogo/internal/database"
	"panel_catalogo/internal/handlers"
	"panel_catalogo/internal/handlers/admin"
	"panel_catalogo/internal/repository"
	"panel_catalogo/internal/routes"
	"panel_catalogo/internal/services"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	// respaldo para contextos sin logger asociado por el middleware
	zerolog.DefaultContextLogger = &zlog.Logger

	config.Load()

	database.ConnectDatabases()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureProductIndexes(ctx); err != nil {
		log.Fatal("❌ Error creación índices de productos:", err)
	}
	if _, err := database.MigrateLegacyCategories(ctx); err != nil {
		log.Println("⚠️ Migración de categorías antiguas falló:", err)
	}

	productRepo := repository.NewMongoProductRepository(database.Mongo)
	uploader := services.NewMinioUploader(database.MinIO)
	indexer := services.NewElasticIndexer(database.Elastic)
	listCache := cache.NewProductListCache(database.Redis)
	authenticator := auth.NewEnvAuthenticator()

	authHandler := handlers.NewAuthHandler(authenticator)
	productHandler := admin.NewProductHandler(productRepo, uploader, listCache, indexer)

	r := gin.Default()
	routes.RegisterRoutes(r, authHandler, productHandler)

	port := config.Port()
	log.Println("🚀 Panel de catálogo escuchando en el puerto", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Error al iniciar el servidor:", err)
	}
}
