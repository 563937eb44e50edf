package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedomradio/ecirs/internal/api/metrics"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ReceiptHandler handles HTTP requests for payment receipts.
type ReceiptHandler struct {
	receipts ports.ReceiptService
}

func NewReceiptHandler(receipts ports.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// Record acknowledges a payment against an invoice.
//
// @Summary      Record a receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordReceiptRequest  true  "Receipt details"
// @Success      201   {object}  domain.Receipt
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/receipts [post]
func (h *ReceiptHandler) Record(c echo.Context) error {
	var req recordReceiptRequest
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

	receipt, err := h.receipts.Record(c.Request().Context(), ports.RecordReceiptInput{
		InvoiceNum: req.InvoiceNum,
		Amount:     req.Amount,
		Method:     req.Method,
		RecordedBy: username,
	})
	if err != nil {
		return err
	}

	metrics.ReceiptsRecordedTotal.WithLabelValues(receipt.Method).Inc()
	return c.JSON(http.StatusCreated, receipt)
}

// List returns receipts, optionally filtered by client.
//
// @Summary      List receipts
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Success      200        {array}   domain.Receipt
// @Router       /v1/receipts [get]
func (h *ReceiptHandler) List(c echo.Context) error {
	receipts, err := h.receipts.List(c.Request().Context(), c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, receipts)
}
