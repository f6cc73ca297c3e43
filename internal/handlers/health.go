package handlers

import (
	"database/sql"
	"net/http"
	"time"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// ServeHTTP handles GET /healthz. Returns 200 when the database responds,
// 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"database": "ok"}
	status := "healthy"
	code := http.StatusOK

	if err := h.db.PingContext(r.Context()); err != nil {
		checks["database"] = err.Error()
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
