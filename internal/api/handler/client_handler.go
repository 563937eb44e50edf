package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ClientHandler handles HTTP requests for advertiser accounts.
type ClientHandler struct {
	clients ports.ClientService
	ledger  ports.LedgerRepository
}

func NewClientHandler(clients ports.ClientService, ledger ports.LedgerRepository) *ClientHandler {
	return &ClientHandler{clients: clients, ledger: ledger}
}

// Create registers a new advertiser.
//
// @Summary      Create an advertiser
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Advertiser details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		TIN:           req.TIN,
		Type:          req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Get returns a single advertiser.
//
// @Summary      Get an advertiser
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// List returns all advertisers.
//
// @Summary      List advertisers
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Ledger returns an advertiser's balance and posting history.
//
// @Summary      Advertiser ledger statement
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  ledgerResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id}/ledger [get]
func (h *ClientHandler) Ledger(c echo.Context) error {
	client, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	entries, err := h.ledger.ListByClient(c.Request().Context(), client.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ledgerResponse{
		ClientID: client.ID,
		Balance:  client.Balance,
		Entries:  entries,
	})
}
