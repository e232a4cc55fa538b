package handlers

import (
	"net/http"
	"strconv"

	"bank-account-service/internal/dto"
	"bank-account-service/internal/errors"
	"bank-account-service/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles bank account HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// RegisterRoutes mounts the account endpoints on g
func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllAccounts)
	g.GET("/:id", h.GetAccountByID)
	g.POST("", h.AddAccount)
	g.PUT("/:id", h.UpdateAccount)
	g.DELETE("/:id", h.DeleteAccount)
}

// GetAllAccounts lists every stored account
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {array} dto.ReceiveAccount "All accounts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/accounts [get]
func (h *AccountHandler) GetAllAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAllAccounts(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, accounts)
}

// GetAccountByID returns a single account
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.ReceiveAccount "Account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return invalidAccountID(c)
	}

	account, found, err := h.accountService.GetAccountByID(c.Request().Context(), id)
	if err != nil {
		return SendSystemError(c, err)
	}
	if !found {
		return SendError(c, errors.AccountNotFound)
	}

	return c.JSON(http.StatusOK, account)
}

// AddAccount creates an account. Any id in the body is ignored.
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.RequestAccount true "Account details"
// @Success 201 {object} dto.ReceiveAccount "Account created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/accounts [post]
func (h *AccountHandler) AddAccount(c echo.Context) error {
	var req dto.RequestAccount
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	account, err := h.accountService.AddAccount(c.Request().Context(), req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount overwrites name, number and owner of an existing account
// @Summary Update account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.RequestAccount true "Account details"
// @Success 200 {object} dto.ReceiveAccount "Account updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001/VALIDATION_003 - Invalid body or ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return invalidAccountID(c)
	}

	var req dto.RequestAccount
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	account, found, err := h.accountService.UpdateAccount(c.Request().Context(), id, req)
	if err != nil {
		return SendSystemError(c, err)
	}
	if !found {
		return SendError(c, errors.AccountNotFound)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account and reports whether it existed
// @Summary Delete account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {boolean} boolean "true when the account existed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return invalidAccountID(c)
	}

	deleted, err := h.accountService.DeleteAccount(c.Request().Context(), id)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, deleted)
}

func parseAccountID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func invalidAccountID(c echo.Context) error {
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be an integer"))
}
