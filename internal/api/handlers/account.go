package handlers

import (
	"errors"
	"net/http"

	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create an account and return a session token. The account starts on its personal sync scope.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Registration payload"
// @Success 201 {object} service.SessionResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.accountService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAccountAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
// @Summary Sign in to an account
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login payload"
// @Success 200 {object} service.SessionResponse "Signed in"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Unknown email or wrong password"
// @Router /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.accountService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SwitchScope handles POST /accounts/scope
// @Summary Switch the signed-in account to another sync scope
// @Description Point the account at a shared team key, or back at its personal scope
// @Tags auth
// @Accept json
// @Produce json
// @Param scope body service.SwitchScopeRequest true "Scope payload"
// @Success 200 {object} service.AccountResponse "Scope switched"
// @Failure 400 {object} ErrorResponse "Invalid sync key"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Security BearerAuth
// @Router /accounts/scope [post]
func (h *AccountHandler) SwitchScope(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("account_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not signed in"})
		return
	}

	var req service.SwitchScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.accountService.SwitchScope(accountID, &req)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		case errors.Is(err, apperrors.ErrAccountNotFound):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "account not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to switch scope"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
