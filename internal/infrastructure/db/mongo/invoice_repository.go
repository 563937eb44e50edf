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

const invoicesCollection = "invoices"

type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection(invoicesCollection)}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if invoice.ID == "" {
		invoice.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, invoice)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) FindByDocNum(ctx context.Context, docNum string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"doc_num": docNum}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter ports.InvoiceListFilter) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "issued_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []*domain.Invoice
	for cursor.Next(ctx) {
		var inv domain.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, cursor.Err()
}

// ApplyPayment atomically increments amount_paid on an open invoice and flips
// the status to paid once the amount is fully covered. The status guard in the
// filter keeps concurrent receipts from paying a settled invoice.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, docNum string, amount int64) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"doc_num": docNum, "status": string(domain.InvoiceIssued)}
	update := bson.M{"$inc": bson.M{"amount_paid": amount}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inv domain.Invoice
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either unknown or no longer open.
			if _, findErr := r.FindByDocNum(ctx, docNum); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrInvoiceNotPayable
		}
		return nil, fmt.Errorf("apply payment: %w", err)
	}

	if inv.AmountPaid >= inv.Amount {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"doc_num": docNum, "status": string(domain.InvoiceIssued)},
			bson.M{"$set": bson.M{"status": string(domain.InvoicePaid)}},
		)
		if err != nil {
			return nil, fmt.Errorf("settle invoice: %w", err)
		}
		inv.Status = domain.InvoicePaid
	}
	return &inv, nil
}

// EnsureIndexes creates necessary indexes on the invoices collection.
func (r *InvoiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doc_num", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "contract_num", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
