package handler

import (
	"log/slog"

	"vendorradar/internal/delivery/api/middleware"
	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and account endpoints for both roles.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type registerVendorRequest struct {
	Name           string          `json:"name" validate:"required,min=2,max=50"`
	Email          string          `json:"email" validate:"required,email"`
	Password       string          `json:"password" validate:"required,min=6"`
	Phone          string          `json:"phone" validate:"required,phone"`
	BusinessName   string          `json:"businessName" validate:"required,min=2,max=100"`
	Description    string          `json:"description" validate:"max=500"`
	OperatingHours hoursRequest    `json:"operatingHours"`
	Location       locationRequest `json:"location"`
}

type registerCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// authView is the body returned after registration or login.
type authView struct {
	Token    string           `json:"token,omitempty"`
	Role     entity.Role      `json:"role"`
	Vendor   *entity.Vendor   `json:"vendor,omitempty"`
	Customer *entity.Customer `json:"customer,omitempty"`
}

func presentAuth(out *usecase.AuthOutput) authView {
	return authView{Token: out.Token, Role: out.Role, Vendor: out.Vendor, Customer: out.Customer}
}

// RegisterVendor handles POST /auth/vendor/register
func (h *AuthHandler) RegisterVendor(c echo.Context) error {
	var req registerVendorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	location, err := req.Location.input()
	if err != nil {
		return err
	}

	out, err := h.authUC.RegisterVendor(c.Request().Context(), &usecase.RegisterVendorInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		BusinessName:   req.BusinessName,
		Description:    req.Description,
		Location:       location,
		OperatingHours: req.OperatingHours.hours(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, presentAuth(out))
}

// RegisterCustomer handles POST /auth/customer/register
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return response.Created(c, presentAuth(out))
}

// LoginVendor handles POST /auth/vendor/login
func (h *AuthHandler) LoginVendor(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginVendor(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.OK(c, presentAuth(out))
}

// LoginCustomer handles POST /auth/customer/login
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginCustomer(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.OK(c, presentAuth(out))
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := subject(c)
	if err != nil {
		return err
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	out, err := h.authUC.Me(c.Request().Context(), id, role)
	if err != nil {
		return err
	}

	return response.OK(c, presentAuth(out))
}

// ChangePassword handles PUT /auth/change-password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	id, err := subject(c)
	if err != nil {
		return err
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), id, role, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return err
	}

	return response.OK(c, map[string]any{"message": "Password changed successfully"})
}
