package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedomradio/ecirs/internal/api/metrics"
	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ContractHandler handles HTTP requests for airtime contracts.
type ContractHandler struct {
	contracts ports.ContractService
}

func NewContractHandler(contracts ports.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// Create drafts a new contract.
//
// @Summary      Draft a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContractRequest  true  "Contract details"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	contract, err := h.contracts.Create(c.Request().Context(), ports.CreateContractInput{
		ClientID:     req.ClientID,
		Campaign:     req.Campaign,
		StationCodes: req.StationCodes,
		Amount:       req.Amount,
		CreatedBy:    username,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contract)
}

// Get returns a contract by document number.
//
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        doc_num  path      string  true  "Contract number (e.g. CTR-2026-000042)"
// @Success      200      {object}  domain.Contract
// @Failure      404      {object}  errorResponse
// @Router       /v1/contracts/{doc_num} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	contract, err := h.contracts.Get(c.Request().Context(), c.Param("doc_num"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// List returns contracts, optionally filtered by client or status.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Param        status     query     string  false  "Filter by status"
// @Success      200        {array}   domain.Contract
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.contracts.List(c.Request().Context(), ports.ContractListFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contracts)
}

// Transition moves a contract through its status machine.
//
// @Summary      Change contract status
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        doc_num  path      string             true  "Contract number"
// @Param        body     body      transitionRequest  true  "Target status"
// @Success      200      {object}  domain.Contract
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/contracts/{doc_num}/status [post]
func (h *ContractHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	contract, err := h.contracts.Transition(c.Request().Context(), c.Param("doc_num"), domain.ContractStatus(req.Status), role, username)
	if err != nil {
		return err
	}

	metrics.ContractTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, contract)
}
