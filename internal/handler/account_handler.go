package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accountrest/account-service/internal/middleware"
	"github.com/accountrest/account-service/internal/models"
	"github.com/accountrest/account-service/internal/repository"
	"github.com/accountrest/account-service/internal/validation"
)

// AccountStore defines the persistence operations used by AccountHandler.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id int) (*models.Account, error)
	ListAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int) error
}

// AccountHandler handles the account CRUD routes. Stateless: every request
// is an independent request->response transform over the store.
type AccountHandler struct {
	store AccountStore
}

func NewAccountHandler(store AccountStore) *AccountHandler {
	return &AccountHandler{store: store}
}

// CreateAccount handles POST /accounts. Requires an application/json body
// that passes field validation; responds 201 with the persisted account and
// its Location.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	if c.ContentType() != "application/json" {
		middleware.RespondWithError(c, http.StatusUnsupportedMediaType,
			"Content-Type must be application/json")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validation.Check(payload); details != nil {
		middleware.RespondWithValidationError(c, details)
		return
	}

	account := models.AccountFromPayload(payload)
	if err := h.store.Create(c.Request.Context(), account); err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.Header("Location", fmt.Sprintf("/accounts/%d", account.ID))
	c.JSON(http.StatusCreated, account)
}

// ListAccounts handles GET /accounts. Always 200; an empty store yields [].
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, accounts)
}

// GetAccount handles GET /accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	account, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondAccountNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PUT /accounts/:id as a full replace: the record must
// exist (404 first), the replacement body must validate (400), and every
// validated field is overwritten while the id is preserved.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	if _, err := h.store.FindByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondAccountNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validation.Check(payload); details != nil {
		middleware.RespondWithValidationError(c, details)
		return
	}

	account := models.AccountFromPayload(payload)
	account.ID = id
	if err := h.store.Update(c.Request.Context(), account); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondAccountNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:id. Hard delete; deleting twice
// yields 404 on the second call.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondAccountNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

// accountID parses the :id path segment. A non-integer segment can never
// name a record, so it is answered with the same 404 a missing id gets.
func accountID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("Account with id [%s] could not be found.", raw))
		return 0, false
	}
	return id, true
}

func respondAccountNotFound(c *gin.Context, id int) {
	middleware.RespondWithError(c, http.StatusNotFound,
		fmt.Sprintf("Account with id [%d] could not be found.", id))
}
