package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SaveDay(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// SaveDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SaveDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance saved", result)
}

// GetDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetDay(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DailyReportFilter{
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		EmployeeID: r.URL.Query().Get("emp_id"),
	}

	result, err := h.attendanceService.DailyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.EmployeeID = chi.URLParam(r, "empID")

	if err := h.attendanceService.UpdateRecord(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", nil)
}

// DeleteRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	empID := chi.URLParam(r, "empID")

	if err := h.attendanceService.DeleteRecord(r.Context(), date, empID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
