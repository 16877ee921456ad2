package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.Create(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"request": request.ToResponse()})
}

// My implements LeaveHandler.
func (h *LeaveHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.MyRequests(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"requests": toLeaveResponses(requests)})
}

// Pending implements LeaveHandler.
func (h *LeaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.Pending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"requests": toLeaveResponses(requests)})
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.Approve)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.Reject)
}

func (h *LeaveHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, principal auth.Principal, requestID string) (leave.LeaveRequest, error),
) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	request, err := fn(r.Context(), principal, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"request": request.ToResponse()})
}

func toLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	items := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, req.ToResponse())
	}
	return items
}
