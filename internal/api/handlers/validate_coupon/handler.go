package validate_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons"
	"github.com/m04kA/Fairway-BookingService/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "Coupon code is required"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons/validate
// Невалидный купон - ответ 200 с valid=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /coupons/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coupons/validate - Failed to validate coupon: code=%s, error=%v", req.CouponCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons/validate - code=%s, valid=%t", req.CouponCode, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
