package repository

import (
	"context"
	"errors"

	"panel_catalogo/internal/models"
)

// ErrDuplicateSlug señala la violación del índice único sobre slug.
var ErrDuplicateSlug = errors.New("ya existe un producto con ese slug")

// ProductUpdate describe una actualización parcial. Los campos nil no se
// tocan; Images no-nil reemplaza la lista completa. El slug nunca se
// recalcula en una actualización.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Categories  []string
	Tags        []string
	Images      []string
	IsActive    *bool
}

type ProductRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	UpdateByID(ctx context.Context, id string, update ProductUpdate) error
	DeleteByID(ctx context.Context, id string) error
	ListByCreatedDesc(ctx context.Context) ([]models.Product, error)
}
