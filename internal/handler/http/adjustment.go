package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{
		adjustmentService: adjustmentService,
	}
}

// Create implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created", result)
}

// List implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := adjustment.AdjustmentFilter{
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		EmployeeID: r.URL.Query().Get("emp_id"),
	}

	result, err := h.adjustmentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req adjustment.UpdateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.adjustmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment updated", result)
}

// Delete implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.adjustmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}
