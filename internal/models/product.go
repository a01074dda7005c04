package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyCategory es la forma antigua de categoría embebida. Solo se decodifica
// para compatibilidad de lectura; nunca se escribe. La migración al arranque
// la convierte en una entrada de Categories.
type LegacyCategory struct {
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

type Product struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	Description    string             `json:"description" bson:"description"`
	Price          float64            `json:"price" bson:"price"`
	Images         []string           `json:"images" bson:"images"`
	Categories     []string           `json:"categories" bson:"categories"`
	LegacyCategory *LegacyCategory    `json:"category,omitempty" bson:"category,omitempty"`
	Tags           []string           `json:"tags" bson:"tags"`
	IsActive       bool               `json:"is_active" bson:"isActive"`
	CreatedAt      time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updatedAt"`
}

// CategorySlugs devuelve los identificadores de categoría del producto,
// cayendo a la categoría embebida antigua si el documento aún no fue migrado.
func (p *Product) CategorySlugs() []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}
	if p.LegacyCategory != nil && p.LegacyCategory.Slug != "" {
		return []string{p.LegacyCategory.Slug}
	}
	return nil
}
