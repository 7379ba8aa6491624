// store/orders.go
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-checkout/models"
)

// OrderStore persists orders in MongoDB. It implements the pipeline's
// payment.OrderStore contract and backs the admin order screens.
type OrderStore struct {
	Collection *mongo.Collection
}

// NewOrderStore creates an OrderStore on the checkout database.
func NewOrderStore(client *mongo.Client) *OrderStore {
	collection := client.Database("checkout").Collection("orders")
	return &OrderStore{Collection: collection}
}

// Insert commits one order, assigning its identity and creation timestamp.
func (s *OrderStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now().UTC()
	_, err := s.Collection.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// FindByID retrieves one order.
func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	return order, err
}

// List returns orders newest first.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := s.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, cursor.Err()
}

// UpdateStatus sets a new persisted status label on an order. Used by the
// admin manual-review transition, never by the checkout pipeline itself.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, label string) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": label},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
