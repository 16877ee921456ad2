package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// decodeCheckRequest tolerates an empty body; the date defaults to today.
func decodeCheckRequest(r *http.Request) (attendance.CheckRequest, error) {
	var req attendance.CheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return req, err
	}

	return req, nil
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := decodeCheckRequest(r)
	if err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"record": record.ToResponse()})
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := decodeCheckRequest(r)
	if err != nil {
		slog.Error("Check-out decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.attendanceService.CheckOut(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"updated": updated})
}

// My implements AttendanceHandler.
func (h *AttendanceHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListMine(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, record.ToResponse())
	}

	response.JSON(w, map[string]interface{}{"records": items})
}
