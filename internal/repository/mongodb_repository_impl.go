package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panel_catalogo/internal/models"
)

type MongoProductRepositoryImpl struct {
	db *mongo.Database
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepositoryImpl{db: db}
}

func (r *MongoProductRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection("products")
}

func (r *MongoProductRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product

	err := r.collection().FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindBySlug").Msg("")
		return nil, err
	}

	return &product, nil
}

func (r *MongoProductRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Product, error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindByID").Msg("")
		return nil, err
	}

	var product models.Product
	err = r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: productID}}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindByID").Msg("")
		return nil, err
	}

	return &product, nil
}

func (r *MongoProductRepositoryImpl) Insert(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Insert").Msg("")
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *MongoProductRepositoryImpl) UpdateByID(ctx context.Context, id string, update ProductUpdate) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateByID").Msg("")
		return err
	}

	set := bson.D{{Key: "updatedAt", Value: time.Now()}}
	unset := bson.D{}

	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Categories != nil {
		set = append(set, bson.E{Key: "categories", Value: update.Categories})
		// al escribir la lista, la categoría embebida antigua queda obsoleta
		unset = append(unset, bson.E{Key: "category", Value: ""})
	}
	if update.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: update.Tags})
	}
	if update.Images != nil {
		set = append(set, bson.E{Key: "images", Value: update.Images})
	}
	if update.IsActive != nil {
		set = append(set, bson.E{Key: "isActive", Value: *update.IsActive})
	}

	change := bson.D{{Key: "$set", Value: set}}
	if len(unset) > 0 {
		change = append(change, bson.E{Key: "$unset", Value: unset})
	}

	// Sin verificación de existencia: un id ausente es un no-op silencioso.
	_, err = r.collection().UpdateOne(ctx, bson.D{{Key: "_id", Value: productID}}, change)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateByID").Msg("")
		return err
	}

	return nil
}

func (r *MongoProductRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteByID").Msg("")
		return err
	}

	_, err = r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: productID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteByID").Msg("")
		return err
	}

	return nil
}

func (r *MongoProductRepositoryImpl) ListByCreatedDesc(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ListByCreatedDesc").Msg("")
		return nil, err
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ListByCreatedDesc").Msg("")
		return nil, err
	}

	return products, nil
}
