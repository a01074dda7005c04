package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureProductIndexes crea el índice único sobre slug. El índice es la
// fuente de verdad de la unicidad: la verificación previa en el handler
// es solo una optimización para dar un mensaje amigable.
func EnsureProductIndexes(ctx context.Context) error {
	_, err := Mongo.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// MigrateLegacyCategories convierte los documentos antiguos con una sola
// categoría embebida {name, slug} al formato actual: lista de identificadores
// normalizados. Se ejecuta una vez al arrancar; los documentos ya migrados
// no coinciden con el filtro.
func MigrateLegacyCategories(ctx context.Context) (int64, error) {
	filter := bson.M{
		"category.slug": bson.M{"$exists": true},
		"$or": []bson.M{
			{"categories": bson.M{"$exists": false}},
			{"categories": bson.M{"$size": 0}},
		},
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{"categories": bson.A{"$category.slug"}}}},
		{{Key: "$unset", Value: "category"}},
	}

	result, err := Mongo.Collection("products").UpdateMany(ctx, filter, pipeline)
	if err != nil {
		return 0, err
	}

	if result.ModifiedCount > 0 {
		log.Printf("✅ %d producto(s) migrado(s) al formato de categorías en lista", result.ModifiedCount)
	}
	return result.ModifiedCount, nil
}
