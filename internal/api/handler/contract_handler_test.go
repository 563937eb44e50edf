package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

type stubContractService struct {
	createFn     func(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error)
	getFn        func(ctx context.Context, docNum string) (*domain.Contract, error)
	listFn       func(ctx context.Context, filter ports.ContractListFilter) ([]*domain.Contract, error)
	transitionFn func(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error)
}

func (s *stubContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
	return s.createFn(ctx, input)
}

func (s *stubContractService) Get(ctx context.Context, docNum string) (*domain.Contract, error) {
	return s.getFn(ctx, docNum)
}

func (s *stubContractService) List(ctx context.Context, filter ports.ContractListFilter) ([]*domain.Contract, error) {
	return s.listFn(ctx, filter)
}

func (s *stubContractService) Transition(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error) {
	return s.transitionFn(ctx, docNum, next, actorRole, actor)
}

func TestContractHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubContractService{
		createFn: func(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
			if input.CreatedBy != "musa_lawal" {
				t.Fatalf("expected creator from claims, got %q", input.CreatedBy)
			}
			return &domain.Contract{DocNum: "CTR-2026-000001", ClientID: input.ClientID, Status: domain.ContractDraft}, nil
		},
	}
	handler := NewContractHandler(stub)

	body := `{"client_id":"client_1","campaign":"Ramadan Promo","station_codes":["FR-KAN"],"amount":500000000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contracts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "musa_lawal")
	c.Set("role", "sales_executive")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["doc_num"] != "CTR-2026-000001" || resp["status"] != "draft" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestContractHandler_Create_MissingAmount(t *testing.T) {
	e := newTestEcho()
	handler := NewContractHandler(&stubContractService{
		createFn: func(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := `{"client_id":"client_1","campaign":"Promo","station_codes":["FR-KAN"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contracts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "musa_lawal")
	c.Set("role", "sales_executive")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestContractHandler_Transition_PassesClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubContractService{
		transitionFn: func(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error) {
			if docNum != "CTR-2026-000001" || next != domain.ContractApproved {
				t.Fatalf("unexpected args: %s %s", docNum, next)
			}
			if actorRole != "station_manager" || actor != "sadiq_umar" {
				t.Fatalf("claims not forwarded: %s %s", actorRole, actor)
			}
			return &domain.Contract{DocNum: docNum, Status: next}, nil
		},
	}
	handler := NewContractHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/contracts/CTR-2026-000001/status", strings.NewReader(`{"status":"approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("doc_num")
	c.SetParamValues("CTR-2026-000001")
	c.Set("username", "sadiq_umar")
	c.Set("role", "station_manager")

	if err := handler.Transition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContractHandler_Transition_UnknownStatus(t *testing.T) {
	e := newTestEcho()
	handler := NewContractHandler(&stubContractService{
		transitionFn: func(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/contracts/CTR-2026-000001/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("doc_num")
	c.SetParamValues("CTR-2026-000001")
	c.Set("username", "sadiq_umar")
	c.Set("role", "station_manager")

	err := handler.Transition(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestContractHandler_List_ForwardsFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubContractService{
		listFn: func(ctx context.Context, filter ports.ContractListFilter) ([]*domain.Contract, error) {
			if filter.ClientID != "client_1" || filter.Status != "active" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Contract{}, nil
		},
	}
	handler := NewContractHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/contracts?client_id=client_1&status=active", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
