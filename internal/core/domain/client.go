package domain

import (
	"errors"
	"time"
)

// Advertiser account types.
const (
	ClientTypeDirect = "direct"
	ClientTypeAgency = "agency"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")
var ErrInvalidInput = errors.New("invalid input")

// Client is an advertiser billed by the network. Balance is the outstanding
// amount owed, in kobo, and is only mutated through ledger postings.
type Client struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	CompanyName   string    `json:"company_name" bson:"company_name"`
	ContactPerson string    `json:"contact_person" bson:"contact_person"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	TIN           string    `json:"tin" bson:"tin"`
	Type          string    `json:"type" bson:"type"`
	Balance       int64     `json:"balance" bson:"balance"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
