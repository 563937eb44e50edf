package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedomradio/ecirs/internal/api/metrics"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	invoices ports.InvoiceService
}

func NewInvoiceHandler(invoices ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// Issue bills a contract.
//
// @Summary      Issue an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      issueInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Issue(c echo.Context) error {
	var req issueInvoiceRequest
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

	invoice, err := h.invoices.Issue(c.Request().Context(), ports.IssueInvoiceInput{
		ContractNum: req.ContractNum,
		Amount:      req.Amount,
		DueDays:     req.DueDays,
		IssuedBy:    username,
	})
	if err != nil {
		return err
	}

	metrics.InvoicesIssuedTotal.Inc()
	return c.JSON(http.StatusCreated, invoice)
}

// Get returns an invoice by document number.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        doc_num  path      string  true  "Invoice number (e.g. INV-2026-000042)"
// @Success      200      {object}  domain.Invoice
// @Failure      404      {object}  errorResponse
// @Router       /v1/invoices/{doc_num} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	invoice, err := h.invoices.Get(c.Request().Context(), c.Param("doc_num"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// List returns invoices, optionally filtered by client or status.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Param        status     query     string  false  "Filter by status"
// @Success      200        {array}   domain.Invoice
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.invoices.List(c.Request().Context(), ports.InvoiceListFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}
