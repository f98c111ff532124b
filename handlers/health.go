package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"gorm.io/gorm"

	"github.com/breno-augst/family-relationship-api/database"
)

type HealthHandler struct {
	DB *gorm.DB
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.DB); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
