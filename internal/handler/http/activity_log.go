package http

import (
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
	activitylogservice "github.com/staffhub/ems-backend-go/internal/service/activitylog"
)

type ActivityLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ActivityLogHandlerImpl struct {
	activityService *activitylogservice.Service
}

func NewActivityLogHandler(activityService *activitylogservice.Service) ActivityLogHandler {
	return &ActivityLogHandlerImpl{activityService: activityService}
}

// List implements ActivityLogHandler.
func (h *ActivityLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.activityService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]activitylog.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.ToResponse())
	}

	response.JSON(w, map[string]interface{}{"logs": items})
}
