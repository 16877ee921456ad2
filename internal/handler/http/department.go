package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/department"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.Service
}

func NewDepartmentHandler(departmentService department.Service) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		items = append(items, d.ToResponse())
	}

	response.JSON(w, map[string]interface{}{"departments": items})
}

// Create implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	dept, err := h.departmentService.Create(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"department": dept.ToResponse()})
}

// Update implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	dept, err := h.departmentService.Update(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"department": dept.ToResponse()})
}

// Delete implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.departmentService.Delete(r.Context(), principal, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
