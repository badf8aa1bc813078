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

// MongoProducts репозиторий товаров поверх MongoDB
type MongoProducts struct {
	collection *mongo.Collection
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{collection: db.Collection("products")}
}

var _ ProductRepository = (*MongoProducts)(nil)

func (m *MongoProducts) Create(ctx context.Context, p *domain.Product) error {
	p.ID = primitive.NewObjectID().Hex()
	if _, err := m.collection.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (m *MongoProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

func (m *MongoProducts) Update(ctx context.Context, p *domain.Product) error {
	res, err := m.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProducts) Delete(ctx context.Context, id string) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProducts) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	filter := bson.M{}
	if f.NameSubstring != "" {
		filter["name"] = bson.M{"$regex": f.NameSubstring, "$options": "i"}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]domain.Product, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return out, nil
}

// MongoUsers репозиторий пользователей поверх MongoDB
type MongoUsers struct {
	collection *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{collection: db.Collection("users")}
}

var _ UserRepository = (*MongoUsers)(nil)

func (m *MongoUsers) Create(ctx context.Context, u *domain.User) error {
	u.ID = primitive.NewObjectID().Hex()
	u.CreatedAt = time.Now().UTC()
	if _, err := m.collection.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (m *MongoUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (m *MongoUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := m.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

func (m *MongoUsers) Update(ctx context.Context, u *domain.User) error {
	res, err := m.collection.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoUsers) CreateIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// MongoCodes хранилище кодов входа, документ на email, TTL по expires_at
type MongoCodes struct {
	collection *mongo.Collection
}

func NewMongoCodes(db *mongo.Database) *MongoCodes {
	return &MongoCodes{collection: db.Collection("verification_codes")}
}

var _ VerificationCodeRepository = (*MongoCodes)(nil)

func (m *MongoCodes) Upsert(ctx context.Context, vc *domain.VerificationCode) error {
	filter := bson.M{"email": vc.Email}
	update := bson.M{"$set": vc}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert verification code: %w", err)
	}
	return nil
}

func (m *MongoCodes) Find(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	var vc domain.VerificationCode
	err := m.collection.FindOne(ctx, bson.M{"email": email, "code": code}).Decode(&vc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find verification code: %w", err)
	}
	return &vc, nil
}

func (m *MongoCodes) Delete(ctx context.Context, email string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}

func (m *MongoCodes) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	if _, err := m.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create verification code indexes: %w", err)
	}
	return nil
}
