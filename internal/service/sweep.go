package service

import (
	"context"
	"time"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/arjun/callpilot/internal/logger"
	"github.com/arjun/callpilot/internal/vapi"
	"github.com/robfig/cron/v3"
)

// CallPlacer is the sweep's view of the orchestrator.
type CallPlacer interface {
	PlaceCall(ctx context.Context, req *PlaceCallRequest) (*vapi.Call, error)
}

// Sweep scans due scheduled calls once per tick and places a call for each
// row whose interview date and time match the current wall-clock minute.
//
// There is no "already triggered" guard beyond the one-minute match window:
// a row whose status never changes would fire again on every matching tick.
// Per-row failures are logged and do not stop the scan.
type Sweep struct {
	calls  ScheduledCallStore
	placer CallPlacer
	now    func() time.Time
}

// NewSweep creates a sweep over the given store and call placer.
func NewSweep(calls ScheduledCallStore, placer CallPlacer) *Sweep {
	return &Sweep{
		calls:  calls,
		placer: placer,
		now:    time.Now,
	}
}

// Run executes a single sweep tick.
func (s *Sweep) Run(ctx context.Context) {
	ctx = logger.SetComponent(ctx, "sweep")

	rows, err := s.calls.ListByStatus(ctx, domain.ScheduledCallStatusScheduled)
	if err != nil {
		logger.CtxError(ctx, "Error fetching scheduled calls: %v", err)
		return
	}

	now := s.now()
	currentDate := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	logger.CtxDebug(ctx, "Looking for calls scheduled at %s %s", currentDate, currentTime)

	for _, row := range rows {
		if row.InterviewDate != currentDate || minuteOf(row.InterviewTime) != currentTime {
			continue
		}

		logger.CtxInfo(ctx, "Initiating call for scheduled call %s", row.ID)

		if _, err := s.placer.PlaceCall(ctx, &PlaceCallRequest{
			Name:            row.CandidateName,
			Number:          row.CandidatePhone,
			AdminID:         row.AdminID,
			ScheduledCallID: row.ID,
		}); err != nil {
			logger.CtxError(ctx, "Failed to trigger call for %s: %v", row.ID, err)
			continue
		}

		logger.CtxInfo(ctx, "Call triggered for %s", row.CandidateName)
	}
}

// Start schedules the sweep on the given cron expression and returns the
// runner. The caller owns stopping it.
func (s *Sweep) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		s.Run(context.Background())
	}); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Scheduled-call sweep started with schedule %q", schedule)
	return c, nil
}

// minuteOf normalizes an interview time (HH:mm or HH:mm:ss) to HH:mm.
func minuteOf(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
