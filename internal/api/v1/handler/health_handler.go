package handler

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"
	"time"

	"app/internal/api/v1/dto"

	"github.com/rs/zerolog"
)

// HealthHandler reports service, database, memory and uptime diagnostics
type HealthHandler struct {
	db        *sql.DB
	logger    zerolog.Logger
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *sql.DB, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger, startedAt: time.Now()}
}

// RegisterRoutes mounts the health route. It is deliberately unauthenticated.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/health", http.HandlerFunc(h.health))
}

// health godoc
// @Summary Service health
// @Description Reports service status, database reachability, uptime and memory diagnostics.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponseDTO
// @Failure 503 {object} dto.HealthResponseDTO
// @Router /health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	resp := dto.HealthResponseDTO{
		Status:   "ok",
		Database: "connected",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
	}
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error().Err(err).Msg("Database ping failed")
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	resp.Memory = dto.MemoryStatsDTO{
		AllocMB: mem.Alloc / 1024 / 1024,
		SysMB:   mem.Sys / 1024 / 1024,
		NumGC:   mem.NumGC,
	}

	writeJSON(w, status, resp)
}
