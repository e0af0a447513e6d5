package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymmats-store/gymmats-api/models"
)

// ErrNotFound is returned when a filter matches no document.
var ErrNotFound = errors.New("document not found")

// Store is the persistence boundary the handlers depend on. Defining it here
// (rather than exposing *mongo.Database) lets tests substitute an in-memory
// fake.
type Store interface {
	FindProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) (string, error)

	FindCartByID(ctx context.Context, cartID string) (*models.Cart, error)
	InsertCart(ctx context.Context, cart *models.Cart) error
	ReplaceCart(ctx context.Context, cart *models.Cart) error

	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

const (
	productCollection = "product"
	cartCollection    = "cart"
)

type mongoStore struct {
	db *mongo.Database
}

func (s *mongoStore) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.Collection(productCollection).FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", slug, err)
	}
	return &product, nil
}

func (s *mongoStore) InsertProduct(ctx context.Context, product *models.Product) (string, error) {
	res, err := s.db.Collection(productCollection).InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("insert product %q: %w", product.Slug, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return id.Hex(), nil
}

func (s *mongoStore) FindCartByID(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Collection(cartCollection).FindOne(ctx, bson.M{"cart_id": cartID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart %q: %w", cartID, err)
	}
	return &cart, nil
}

func (s *mongoStore) InsertCart(ctx context.Context, cart *models.Cart) error {
	if _, err := s.db.Collection(cartCollection).InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("insert cart %q: %w", cart.CartID, err)
	}
	return nil
}

// ReplaceCart overwrites the stored cart document wholesale. Concurrent adds
// to the same cart race on this (last write wins); there is no $inc/$push
// here on purpose, matching the service's read-modify-write semantics.
func (s *mongoStore) ReplaceCart(ctx context.Context, cart *models.Cart) error {
	filter := bson.M{"_id": cart.ID}
	if _, err := s.db.Collection(cartCollection).ReplaceOne(ctx, filter, cart); err != nil {
		return fmt.Errorf("replace cart %q: %w", cart.CartID, err)
	}
	return nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *mongoStore) Name() string {
	return s.db.Name()
}
