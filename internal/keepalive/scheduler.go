// Package keepalive periodically pings the public API so the hosting platform does not idle it.
package keepalive

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/empreweb/empreweb-backend/internal/logging"
)

const pingPath = "/api/servicios"

type Scheduler struct {
	url      string
	schedule string
	client   *http.Client
	log      logging.Logger
	cron     *cron.Cron
}

// NewScheduler pings baseURL+"/api/servicios" on schedule, e.g. "@every 13m".
func NewScheduler(baseURL, schedule string, log logging.Logger) *Scheduler {
	return &Scheduler{
		url:      strings.TrimRight(baseURL, "/") + pingPath,
		schedule: schedule,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      log.With("component", "keepalive"),
	}
}

func (s *Scheduler) Start() error {
	c := cron.New()

	if _, err := c.AddFunc(s.schedule, func() { s.Ping(context.Background()) }); err != nil {
		return fmt.Errorf("keepalive schedule %q: %w", s.schedule, err)
	}

	s.cron = c
	c.Start()
	s.log.Info(context.Background(), "keepalive scheduler started", "url", s.url, "schedule", s.schedule)
	return nil
}

// Stop waits for a running ping to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Ping issues one GET and logs the outcome; it never fails.
func (s *Scheduler) Ping(ctx context.Context) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.log.Error(ctx, "keepalive request", "error", err)
		return 0
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error(ctx, "keepalive ping failed", "error", err)
		return 0
	}
	defer resp.Body.Close()

	s.log.Info(ctx, "keepalive ping sent", "status", resp.StatusCode)
	return resp.StatusCode
}
