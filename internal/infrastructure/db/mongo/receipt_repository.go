package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

const receiptsCollection = "receipts"

type ReceiptRepository struct {
	coll *mongo.Collection
}

func NewReceiptRepository(db *mongo.Database) *ReceiptRepository {
	return &ReceiptRepository{coll: db.Collection(receiptsCollection)}
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if receipt.ID == "" {
		receipt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, receipt)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// List returns receipts, newest first. When clientID is non-empty only that
// client's receipts are returned.
func (r *ReceiptRepository) List(ctx context.Context, clientID string) ([]*domain.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if clientID != "" {
		query["client_id"] = clientID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer cursor.Close(ctx)

	var receipts []*domain.Receipt
	for cursor.Next(ctx) {
		var rc domain.Receipt
		if err := cursor.Decode(&rc); err != nil {
			return nil, fmt.Errorf("decode receipt: %w", err)
		}
		receipts = append(receipts, &rc)
	}
	return receipts, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the receipts collection.
func (r *ReceiptRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doc_num", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "invoice_num", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
