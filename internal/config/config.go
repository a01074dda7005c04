package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  No se encontró archivo .env — se usan las variables de entorno del sistema")
	} else {
		log.Println("✅ Archivo .env cargado")
	}
}

// IsProduction controla los atributos de seguridad de la cookie de sesión.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// UploadFolder es la carpeta destino de las imágenes dentro del bucket.
func UploadFolder() string {
	if folder := os.Getenv("MINIO_FOLDER"); folder != "" {
		return folder
	}
	return "catalogo-ilumina"
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
