package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/api/metrics"
	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Birthdate is accepted in DD/MM/YYYY and stored as YYYY-MM-DD.
	Birthdate string `json:"birthdate" validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	UserID  int64        `json:"user_id"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type forgotPasswordRequest struct {
	Email       string `json:"email"        validate:"required"`
	Birthdate   string `json:"birthdate"    validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(result.User.Role).Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "user registered",
		UserID:  result.User.ID,
		Token:   result.Token,
		User:    result.User,
	})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// ForgotPassword resets a password using the (email, birthdate) recovery pair.
//
// @Summary      Reset a forgotten password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Recovery details"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.ResetPasswordByIdentity(c.Request().Context(), req.Email, req.Birthdate, req.NewPassword)
	if err != nil {
		return err
	}
	metrics.PasswordUpdatesTotal.WithLabelValues("recovery").Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"message": "password updated",
		"updated": true,
	})
}

// ChangePassword updates the authenticated user's password after
// re-validating the current one.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	metrics.PasswordUpdatesTotal.WithLabelValues("change").Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"message": "password changed",
		"changed": true,
	})
}
