package app

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

type adminStats struct {
	Players         int `json:"players"`
	Courses         int `json:"courses"`
	Rounds          int `json:"rounds"`
	RoundsThisMonth int `json:"rounds_this_month"`
}

// handleAdminStats returns usage counters for the admin dashboard.
func (a *App) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rounds := &rounddb.RoundDBImpl{DB: a.db}
	courses := &coursedb.CourseDBImpl{DB: a.db}
	players := &playerdb.PlayerDBImpl{DB: a.db}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats adminStats
	counts := []struct {
		dst   *int
		count func() (int, error)
	}{
		{&stats.Players, func() (int, error) { return players.CountProfiles(ctx, nil) }},
		{&stats.Courses, func() (int, error) { return courses.CountCourses(ctx, nil) }},
		{&stats.Rounds, func() (int, error) { return rounds.CountRounds(ctx, nil) }},
		{&stats.RoundsThisMonth, func() (int, error) { return rounds.CountRoundsSince(ctx, nil, monthStart) }},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			a.logger.ErrorContext(ctx, "Admin stats failed", attr.Error(err))
			http.Error(w, "failed to gather stats", http.StatusInternalServerError)
			return
		}
		*c.dst = n
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		a.logger.ErrorContext(ctx, "Failed to encode stats", attr.Error(err))
	}
}

// healthCheck is one readiness probe: the database ping and the queue check.
type healthCheck struct {
	name  string
	check func(ctx context.Context) error
}

// handleHealthz reports readiness: the process is up and every dependency
// answers.
func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	for _, hc := range a.healthChecks {
		if err := hc.check(ctx); err != nil {
			a.logger.ErrorContext(ctx, "Health check failed",
				attr.String("check", hc.name),
				attr.Error(err),
			)
			http.Error(w, hc.name+" unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
