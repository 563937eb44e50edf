package handler

import (
	"github.com/freedomradio/ecirs/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username     string   `json:"username"      validate:"required,min=3"`
	Email        string   `json:"email"         validate:"omitempty,email"`
	Password     string   `json:"password"      validate:"required,min=6"`
	FullName     string   `json:"full_name"     validate:"required"`
	Phone        string   `json:"phone"         validate:"omitempty"`
	Role         string   `json:"role"          validate:"required,oneof=super_admin station_manager sales_executive accountant viewer"`
	StationCodes []string `json:"station_codes" validate:"required,min=1"`
	Status       string   `json:"status"        validate:"omitempty,oneof=active inactive"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// --- Clients ---

type createClientRequest struct {
	CompanyName   string `json:"company_name"   validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"          validate:"omitempty,email"`
	Phone         string `json:"phone"`
	TIN           string `json:"tin"`
	Type          string `json:"type"           validate:"omitempty,oneof=direct agency"`
}

type ledgerResponse struct {
	ClientID string                `json:"client_id"`
	Balance  int64                 `json:"balance"`
	Entries  []*domain.LedgerEntry `json:"entries"`
}

// --- Contracts ---

type createContractRequest struct {
	ClientID     string   `json:"client_id"     validate:"required"`
	Campaign     string   `json:"campaign"      validate:"required"`
	StationCodes []string `json:"station_codes" validate:"required,min=1"`
	Amount       int64    `json:"amount"        validate:"required,gt=0"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved active cancelled"`
}

// --- Invoices ---

type issueInvoiceRequest struct {
	ContractNum string `json:"contract_num" validate:"required"`
	Amount      int64  `json:"amount"       validate:"omitempty,gt=0"`
	DueDays     int    `json:"due_days"     validate:"omitempty,gt=0"`
}

// --- Receipts ---

type recordReceiptRequest struct {
	InvoiceNum string `json:"invoice_num" validate:"required"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
	Method     string `json:"method"      validate:"required,oneof=cash transfer cheque pos"`
}
