package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"iraxas/internal/domain"
)

// MongoCarts репозиторий корзин, документ на пользователя
type MongoCarts struct {
	collection *mongo.Collection
}

func NewMongoCarts(db *mongo.Database) *MongoCarts {
	return &MongoCarts{collection: db.Collection("carts")}
}

var _ CartRepository = (*MongoCarts)(nil)

func (m *MongoCarts) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := m.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

func (m *MongoCarts) Upsert(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	if cart.ID == "" {
		cart.ID = primitive.NewObjectID().Hex()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	filter := bson.M{"user_id": cart.UserID}
	update := bson.M{"$set": cart}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}
	return nil
}

func (m *MongoCarts) CreateIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}
	return nil
}

// MongoOrders репозиторий заказов
type MongoOrders struct {
	collection *mongo.Collection
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{collection: db.Collection("orders")}
}

var _ OrderRepository = (*MongoOrders)(nil)

func (m *MongoOrders) Create(ctx context.Context, o *domain.Order) error {
	o.ID = primitive.NewObjectID().Hex()
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	if _, err := m.collection.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (m *MongoOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

func (m *MongoOrders) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]domain.Order, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return out, nil
}

func (m *MongoOrders) SetStatusByGatewayOrder(ctx context.Context, gatewayOrderID string, status domain.OrderStatus) error {
	return m.setStatus(ctx, bson.M{"gateway_order_id": gatewayOrderID}, status)
}

func (m *MongoOrders) SetStatusByGatewayOrderForUser(ctx context.Context, gatewayOrderID, userID string, status domain.OrderStatus) error {
	return m.setStatus(ctx, bson.M{"gateway_order_id": gatewayOrderID, "user_id": userID}, status)
}

func (m *MongoOrders) setStatus(ctx context.Context, filter bson.M, status domain.OrderStatus) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	res, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrders) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gateway_order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	if _, err := m.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}
