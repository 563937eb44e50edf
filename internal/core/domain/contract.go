package domain

import (
	"errors"
	"time"
)

// ContractStatus represents the lifecycle state of an airtime contract.
type ContractStatus string

const (
	ContractDraft     ContractStatus = "draft"
	ContractPending   ContractStatus = "pending"
	ContractApproved  ContractStatus = "approved"
	ContractActive    ContractStatus = "active"
	ContractCancelled ContractStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ContractStatus][]ContractStatus{
	ContractDraft:    {ContractPending, ContractCancelled},
	ContractPending:  {ContractApproved, ContractCancelled},
	ContractApproved: {ContractActive},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrContractNotFound = errors.New("contract not found")
var ErrContractNotBillable = errors.New("contract not approved for billing")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Billable reports whether invoices may be issued against this contract.
func (s ContractStatus) Billable() bool {
	return s == ContractApproved || s == ContractActive
}

// StatusHistoryEntry records a single status transition on a contract.
type StatusHistoryEntry struct {
	Status    ContractStatus `json:"status" bson:"status"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Actor     string         `json:"actor,omitempty" bson:"actor,omitempty"`
}

// Contract is an airtime sales agreement with an advertiser. Amount is the
// total contract value in kobo; StationCodes lists the stations the campaign
// airs on.
type Contract struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	DocNum        string               `json:"doc_num" bson:"doc_num"`
	ClientID      string               `json:"client_id" bson:"client_id"`
	ClientName    string               `json:"client_name" bson:"client_name"`
	Campaign      string               `json:"campaign" bson:"campaign"`
	StationCodes  []string             `json:"station_codes" bson:"station_codes"`
	Amount        int64                `json:"amount" bson:"amount"`
	Status        ContractStatus       `json:"status" bson:"status"`
	CreatedBy     string               `json:"created_by" bson:"created_by"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
