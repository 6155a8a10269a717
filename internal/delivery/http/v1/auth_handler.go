package v1

import (
	"net/http"
	"strings"

	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, admin *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/register", handler.Register)
	}

	adminAuth := admin.Group("/auth")
	{
		adminAuth.GET("/users", handler.ListUsers)
	}
}

type LoginRequest struct {
	// Username also accepts an email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with username (or email) and password. Returns the user and a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(apperror.Unauthorized(err.Error()))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with email, username, and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "already") {
			c.Error(apperror.Conflict(err.Error()))
			return
		}
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

// ListUsers godoc
// @Summary      List Users
// @Description  Returns all accounts for the admin console. Admin only.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	// Mirror gin context values into the request context for the usecase's
	// own privilege check.
	ctx := c.Request.Context()
	if isAdmin, ok := c.Get(string(domain.KeyIsAdmin)); ok {
		ctx = contextWithAdmin(ctx, isAdmin)
	}

	users, err := h.authUC.ListUsers(ctx)
	if err != nil {
		c.Error(apperror.Forbidden(err.Error()))
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", users)
}
