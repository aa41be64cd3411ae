package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/point-ledger/internal/api/httpx"
	"github.com/baharkarakas/point-ledger/internal/api/validate"
	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/baharkarakas/point-ledger/internal/services"
)

type PointService interface {
	Point(ctx context.Context, userID int64) (models.UserPoint, error)
	History(ctx context.Context, userID int64) ([]models.PointHistory, error)
	Charge(ctx context.Context, userID, amount int64) (models.UserPoint, error)
	Use(ctx context.Context, userID, amount int64) (models.UserPoint, error)
}

var _ PointService = (*services.PointService)(nil)

type PointHandler struct {
	svc PointService
	log *slog.Logger
}

func NewPointHandler(svc PointService, log *slog.Logger) *PointHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PointHandler{svc: svc, log: log}
}

type amountReq struct {
	Amount int64 `json:"amount"`
}

func (h *PointHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ef := validate.ID("id", chi.URLParam(r, "id"))
	if ef != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid user id", validate.Errs{*ef})
		return 0, false
	}
	return id, true
}

// GET /point/{id}
func (h *PointHandler) Point(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Point(r.Context(), id)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// GET /point/{id}/histories
func (h *PointHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	list, err := h.svc.History(r.Context(), id)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// PATCH /point/{id}/charge
func (h *PointHandler) Charge(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Charge)
}

// PATCH /point/{id}/use
func (h *PointHandler) Use(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Use)
}

func (h *PointHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, int64) (models.UserPoint, error)) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req amountReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		h.log.Warn("invalid JSON", "err", err)
		if errors.Is(err, httpx.ErrBodyTooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "bad_request", err.Error(), nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON", nil)
		return
	}
	p, err := op(r.Context(), id, req.Amount)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PointHandler) writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", err.Error(), nil)
	case errors.Is(err, services.ErrInsufficientBalance):
		httpx.WriteError(w, http.StatusConflict, "insufficient_balance", err.Error(), nil)
	case errors.Is(err, services.ErrChargeLimitExceeded):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "charge_limit_exceeded", err.Error(), nil)
	default:
		h.log.Error("point request", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
