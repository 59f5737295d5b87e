package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shecanfoundation/intern-backend/internal/model"
	"github.com/shecanfoundation/intern-backend/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ReferralCode    string  `json:"referralCode"`
	DonationsRaised float64 `json:"donationsRaised"`
	TierLabel       string  `json:"tierLabel"`
	JoinDate        string  `json:"joinDate"`
	Avatar          string  `json:"avatar"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", validationMessage(err)))
	}
	u, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("upstream_unavailable", "authentication service is unavailable"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("auth_error", service.AuthErrorMessage(err)))
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *UserHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	u, err := h.svc.Profile(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch profile"))
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", validationMessage(err)))
	}
	if err := h.svc.ChangePassword(c.Request().Context(), uid, req.Password); err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("upstream_unavailable", "authentication service is unavailable"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("auth_error", service.AuthErrorMessage(err)))
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.UID,
		Name:            u.Name,
		Email:           u.Email,
		ReferralCode:    u.ReferralCode,
		DonationsRaised: u.DonationsRaised,
		TierLabel:       u.TierLabel,
		JoinDate:        u.JoinDate,
		Avatar:          u.Avatar,
	}
}

// validationMessage reuses the wording the dashboard shows for the common
// signup mistakes.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Password":
			return "Password should be at least 6 characters"
		case "Email":
			return "Please enter a valid email address"
		case "Name":
			return "Please enter your name"
		}
	}
	return "invalid request"
}
