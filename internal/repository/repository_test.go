package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjun/callpilot/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Admin{},
		&domain.Expert{},
		&domain.ScheduledCall{},
		&domain.InterviewLog{},
		&domain.TranscribedCall{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestExpertRepositoryCreateDefaults(t *testing.T) {
	repo := NewExpertRepository(setupTestDB(t))
	ctx := context.Background()

	expert := &domain.Expert{Name: "Dr. Rao", Specialty: "distributed systems"}
	if err := repo.Create(ctx, expert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expert.ID == "" {
		t.Error("expected generated id")
	}
	if expert.Status != domain.ExpertStatusAvailable {
		t.Errorf("expected default status, got %q", expert.Status)
	}

	experts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(experts) != 1 || experts[0].Name != "Dr. Rao" {
		t.Errorf("unexpected experts %+v", experts)
	}
}

func TestScheduledCallRepository(t *testing.T) {
	repo := NewScheduledCallRepository(setupTestDB(t))
	ctx := context.Background()

	call := &domain.ScheduledCall{
		CandidateName:  "Asha",
		CandidatePhone: "+15551234567",
		InterviewDate:  "2025-06-12",
		InterviewTime:  "14:30:00",
		AdminID:        "A1",
	}
	if err := repo.Create(ctx, call); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if call.ID == "" {
		t.Error("expected generated id")
	}
	if call.Status != domain.ScheduledCallStatusScheduled {
		t.Errorf("expected default status, got %q", call.Status)
	}

	if err := repo.UpdateCallID(ctx, call.ID, "C1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpdateCallStatus(ctx, call.ID, domain.CallStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, call.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CallID != "C1" {
		t.Errorf("expected call_id C1, got %q", got.CallID)
	}
	if got.CallStatus != domain.CallStatusCompleted {
		t.Errorf("expected call_status completed, got %q", got.CallStatus)
	}
	// UpdateCallID must not touch the scheduling status
	if got.Status != domain.ScheduledCallStatusScheduled {
		t.Errorf("expected status scheduled, got %q", got.Status)
	}

	scheduled, err := repo.ListByStatus(ctx, domain.ScheduledCallStatusScheduled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 1 {
		t.Errorf("expected one scheduled row, got %d", len(scheduled))
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected record-not-found, got %v", err)
	}
}

func TestInterviewLogRepository(t *testing.T) {
	repo := NewInterviewLogRepository(setupTestDB(t))
	ctx := context.Background()

	log := &domain.InterviewLog{
		AdminID:         "A1",
		ScheduledCallID: "S1",
		CallID:          "C1",
		AssistantID:     "X",
		PhoneNumberID:   "Y",
		Status:          "queued",
		CallResponse:    domain.JSONMap{"id": "C1", "status": "queued"},
	}
	if err := repo.Create(ctx, log); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs, err := repo.ListByCallID(ctx, "C1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log, got %d", len(logs))
	}
	if logs[0].CallResponse["status"] != "queued" {
		t.Errorf("raw payload not round-tripped: %v", logs[0].CallResponse)
	}
}

func TestTranscribedCallRepositoryDuplicate(t *testing.T) {
	repo := NewTranscribedCallRepository(setupTestDB(t))
	ctx := context.Background()

	row := &domain.TranscribedCall{
		ID:              "C1",
		ScheduledCallID: "S1",
		AdminID:         "A1",
		Transcript:      "AI: hi",
		Status:          "ended",
		RawData:         domain.JSONMap{"id": "C1"},
	}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Create(ctx, &domain.TranscribedCall{ID: "C1", ScheduledCallID: "S1"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected duplicated-key error, got %v", err)
	}

	got, err := repo.GetByID(ctx, "C1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Transcript != "AI: hi" {
		t.Errorf("first row must win, got transcript %q", got.Transcript)
	}
}

func TestTranscribedCallRepositoryListByAdminOrdering(t *testing.T) {
	repo := NewTranscribedCallRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"C1", "C2", "C3"} {
		if err := repo.Create(ctx, &domain.TranscribedCall{
			ID:        id,
			AdminID:   "A1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := repo.Create(ctx, &domain.TranscribedCall{ID: "C4", AdminID: "A2", CreatedAt: base}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := repo.ListByAdmin(ctx, "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected three rows, got %d", len(rows))
	}
	// Newest first
	if rows[0].ID != "C3" || rows[2].ID != "C1" {
		t.Errorf("unexpected ordering: %s, %s, %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestAdminRepositoryGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	if _, err := repo.Get(ctx); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected record-not-found, got %v", err)
	}

	if err := db.Create(&domain.Admin{ID: "A1", Name: "Admin"}).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admin, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "A1" {
		t.Errorf("unexpected admin %+v", admin)
	}
}
