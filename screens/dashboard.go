package screens

import (
	"context"
	"log"

	"case_desk_app_go/models"

	"golang.org/x/sync/errgroup"
)

// DashboardUpcomingLimit is how many upcoming court dates the dashboard shows
const DashboardUpcomingLimit = 5

// DashboardAPI is what the dashboard reads
type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	UpcomingCourtDates(ctx context.Context) ([]models.UpcomingCourtDate, error)
}

// Dashboard shows the counters and the next court dates
type Dashboard struct {
	noticeQueue

	api      DashboardAPI
	Stats    models.DashboardStats
	Upcoming []models.UpcomingCourtDate
}

// NewDashboard creates the dashboard
func NewDashboard(api DashboardAPI, opts ...Option) *Dashboard {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dashboard{api: api, noticeQueue: noticeQueue{notifier: o.notifier}}
}

// Load reads the counters and the upcoming court dates in parallel
func (d *Dashboard) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var stats *models.DashboardStats
	var upcoming []models.UpcomingCourtDate
	g.Go(func() error {
		var err error
		stats, err = d.api.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = d.api.UpcomingCourtDates(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("Error fetching dashboard data: %v", err)
		d.post(LevelError, "Error loading dashboard. Please try again.")
		return err
	}

	d.Stats = *stats
	if len(upcoming) > DashboardUpcomingLimit {
		upcoming = upcoming[:DashboardUpcomingLimit]
	}
	d.Upcoming = upcoming
	return nil
}
