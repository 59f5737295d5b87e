package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shecanfoundation/intern-backend/internal/service"
)

type DonationHandler struct {
	svc service.DonationService
}

func NewDonationHandler(svc service.DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

type DonateRequest struct {
	Amount float64 `json:"amount"`
}

type DonateResponse struct {
	DonationsRaised float64 `json:"donationsRaised"`
}

func (h *DonationHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req DonateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	total, err := h.svc.Apply(c.Request().Context(), uid, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_amount", "donation amount must be a positive number"))
		}
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to record donation"))
	}
	return c.JSON(http.StatusOK, DonateResponse{DonationsRaised: total})
}
