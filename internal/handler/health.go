package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

const readinessTimeout = 2 * time.Second

// Readiness check states
const (
	CheckOK          = "ok"
	CheckFailed      = "failed"
	CheckUnavailable = "unavailable"
	CheckNotSeeded   = "not seeded"
)

// ClassLister is the slice of the catalog the readiness probe needs
type ClassLister interface {
	ListClasses(ctx context.Context) ([]domain.ClassDefinition, error)
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports that the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: CheckOK})
	}
}

// HandleReadyz reports ready once the store answers and the class catalog is seeded.
// catalog may be nil, in which case only the store is checked.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, catalog ClassLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		log := logger.FromContext(ctx)

		checks := map[string]string{"database": CheckOK}
		ready := true

		if dbPool == nil {
			checks["database"] = CheckUnavailable
			ready = false
		} else if err := dbPool.Ping(ctx); err != nil {
			log.Error("Readiness: database ping failed", "error", err)
			checks["database"] = CheckFailed
			ready = false
		}

		if catalog != nil && ready {
			classes, err := catalog.ListClasses(ctx)
			switch {
			case err != nil:
				log.Error("Readiness: catalog lookup failed", "error", err)
				checks["catalog"] = CheckFailed
				ready = false
			case len(classes) == 0:
				checks["catalog"] = CheckNotSeeded
				ready = false
			default:
				checks["catalog"] = CheckOK
			}
		}

		if !ready {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: CheckUnavailable, Checks: checks})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: CheckOK, Checks: checks})
	}
}
