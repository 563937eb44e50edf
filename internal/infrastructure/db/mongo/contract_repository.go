package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

const contractsCollection = "contracts"

type ContractRepository struct {
	coll *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{coll: db.Collection(contractsCollection)}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if contract.ID == "" {
		contract.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, contract)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) FindByDocNum(ctx context.Context, docNum string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Contract
	if err := r.coll.FindOne(ctx, bson.M{"doc_num": docNum}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return &c, nil
}

func (r *ContractRepository) List(ctx context.Context, filter ports.ContractListFilter) ([]*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer cursor.Close(ctx)

	var contracts []*domain.Contract
	for cursor.Next(ctx) {
		var c domain.Contract
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode contract: %w", err)
		}
		contracts = append(contracts, &c)
	}
	return contracts, cursor.Err()
}

// UpdateStatus atomically sets the contract status and appends a history entry.
func (r *ContractRepository) UpdateStatus(ctx context.Context, docNum string, status domain.ContractStatus, entry domain.StatusHistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set":  bson.M{"status": string(status)},
		"$push": bson.M{"status_history": entry},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"doc_num": docNum}, update)
	if err != nil {
		return fmt.Errorf("update contract status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the contracts collection.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doc_num", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
