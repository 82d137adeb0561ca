package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/arjun/callpilot/internal/vapi"
)

type fakePlacer struct {
	mu   sync.Mutex
	reqs []PlaceCallRequest
	err  error
}

func (p *fakePlacer) PlaceCall(_ context.Context, req *PlaceCallRequest) (*vapi.Call, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reqs = append(p.reqs, *req)
	if p.err != nil {
		return nil, p.err
	}
	return &vapi.Call{ID: "C1", Status: "queued"}, nil
}

func (p *fakePlacer) placed() []PlaceCallRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PlaceCallRequest(nil), p.reqs...)
}

func sweepAt(calls *fakeCallStore, placer *fakePlacer, at time.Time) *Sweep {
	s := NewSweep(calls, placer)
	s.now = func() time.Time { return at }
	return s
}

func TestSweepTriggersDueCalls(t *testing.T) {
	now := time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC)

	calls := newFakeCallStore()
	calls.rows["S1"] = &domain.ScheduledCall{
		ID:             "S1",
		CandidateName:  "Asha",
		CandidatePhone: "+15551234567",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "14:30:00",
		Status:         domain.ScheduledCallStatusScheduled,
	}
	calls.rows["S2"] = &domain.ScheduledCall{
		ID:             "S2",
		CandidatePhone: "+15557654321",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "15:00:00",
		Status:         domain.ScheduledCallStatusScheduled,
	}
	calls.rows["S3"] = &domain.ScheduledCall{
		ID:             "S3",
		CandidatePhone: "+15550000000",
		AdminID:        "A1",
		InterviewDate:  "2025-06-13",
		InterviewTime:  "14:30:00",
		Status:         domain.ScheduledCallStatusScheduled,
	}
	// Completed rows are not scanned at all
	calls.rows["S4"] = &domain.ScheduledCall{
		ID:             "S4",
		CandidatePhone: "+15559999999",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "14:30:00",
		Status:         domain.ScheduledCallStatusCompleted,
	}

	placer := &fakePlacer{}
	sweepAt(calls, placer, now).Run(context.Background())

	placed := placer.placed()
	if len(placed) != 1 {
		t.Fatalf("expected exactly one placement, got %d", len(placed))
	}
	if placed[0].ScheduledCallID != "S1" {
		t.Errorf("expected S1 triggered, got %q", placed[0].ScheduledCallID)
	}
	if placed[0].Name != "Asha" || placed[0].Number != "+15551234567" || placed[0].AdminID != "A1" {
		t.Errorf("unexpected placement payload %+v", placed[0])
	}
}

func TestSweepMatchesMinutePrecision(t *testing.T) {
	now := time.Date(2025, 6, 12, 14, 30, 45, 0, time.UTC)

	calls := newFakeCallStore()
	calls.rows["S1"] = &domain.ScheduledCall{
		ID:             "S1",
		CandidatePhone: "+15551234567",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "14:30:15",
		Status:         domain.ScheduledCallStatusScheduled,
	}

	placer := &fakePlacer{}
	sweepAt(calls, placer, now).Run(context.Background())

	// Seconds are ignored: 14:30:15 matches any tick inside 14:30
	if len(placer.placed()) != 1 {
		t.Fatalf("expected one placement, got %d", len(placer.placed()))
	}
}

func TestSweepContinuesPastFailures(t *testing.T) {
	now := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	calls := newFakeCallStore()
	calls.rows["S1"] = &domain.ScheduledCall{
		ID:             "S1",
		CandidatePhone: "+15551111111",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "09:00:00",
		Status:         domain.ScheduledCallStatusScheduled,
	}
	calls.rows["S2"] = &domain.ScheduledCall{
		ID:             "S2",
		CandidatePhone: "+15552222222",
		AdminID:        "A1",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "09:00:00",
		Status:         domain.ScheduledCallStatusScheduled,
	}

	placer := &fakePlacer{err: errors.New("provider down")}
	sweepAt(calls, placer, now).Run(context.Background())

	// Both rows are attempted even though each placement fails
	if len(placer.placed()) != 2 {
		t.Errorf("expected both rows attempted, got %d", len(placer.placed()))
	}
}

func TestMinuteOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:30:00", "14:30"},
		{"14:30", "14:30"},
		{"9:05", "9:05"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := minuteOf(tt.in); got != tt.want {
			t.Errorf("minuteOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
