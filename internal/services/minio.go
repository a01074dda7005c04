package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"panel_catalogo/internal/config"
)

// Uploader abstrae el servicio de almacenamiento de imágenes. Un solo
// intento por subida; el que llama decide qué hacer ante el fallo.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType, filename string) (string, error)
}

type MinioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewMinioUploader(client *minio.Client) *MinioUploader {
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "catalogo"
	}
	return &MinioUploader{
		client:   client,
		bucket:   bucket,
		endpoint: os.Getenv("MINIO_ENDPOINT"),
		useSSL:   os.Getenv("MINIO_USE_SSL") == "true",
	}
}

// Upload guarda la imagen bajo <carpeta>/<uuid><ext> y devuelve su URL
// pública. El nombre aleatorio evita colisiones entre archivos homónimos.
func (u *MinioUploader) Upload(ctx context.Context, r io.Reader, size int64, contentType, filename string) (string, error) {
	if u.client == nil {
		return "", fmt.Errorf("MinIO no inicializado")
	}

	objectName := fmt.Sprintf("%s/%s%s", config.UploadFolder(), uuid.NewString(), filepath.Ext(filename))

	_, err := u.client.PutObject(ctx, u.bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, objectName), nil
}
