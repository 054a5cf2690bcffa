package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
)

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=handlers

// ActivityLister defines the interface for reading the activity feed.
type ActivityLister interface {
	ListActivities(ctx context.Context, limit int) ([]models.ActivityDB, error)
}

// NewListActivitiesHandler returns an HTTP handler for the activity feed.
// @Summary List activities
// @Description Returns the newest activities across all users
// @Tags activities
// @Produce json
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {array} models.ActivityDB "Activities"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /activities [get]
func NewListActivitiesHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, r, http.StatusBadRequest, "limit must be a positive integer", err)
				return
			}
			limit = n
		}

		activities, err := svc.ListActivities(r.Context(), limit)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if activities == nil {
			activities = []models.ActivityDB{}
		}

		writeJSON(w, http.StatusOK, activities)
	}
}
