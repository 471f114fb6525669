package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Counter reports a size. The user store and console registry both satisfy
// it.
type Counter interface {
	Len() int
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Users    Counter
	Consoles Counter
	Log      *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(users, consoles Counter, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    users,
		Consoles: consoles,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Users    int    `json:"users"`
	Consoles int    `json:"consoles"`
}

// Serve handles GET /health.
//
// Always 200 while the process is up:
//
//	{ "status":"ok", "users":4, "consoles":1 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok"}
	if h.Users != nil {
		resp.Users = h.Users.Len()
	}
	if h.Consoles != nil {
		resp.Consoles = h.Consoles.Len()
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("health-check: encode failed", zap.Error(err))
	}
}
