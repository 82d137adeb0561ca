package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/arjun/callpilot/internal/logger"
	"github.com/arjun/callpilot/internal/vapi"
	"gorm.io/gorm"
)

// CallProvider is the slice of the voice-call provider the orchestrator needs.
type CallProvider interface {
	CreateCall(ctx context.Context, req *vapi.CreateCallRequest) (*vapi.Call, error)
	GetCall(ctx context.Context, id string) (*vapi.Call, error)
}

// ScheduledCallStore persists scheduled-call records.
type ScheduledCallStore interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduledCall, error)
	ListByStatus(ctx context.Context, status domain.ScheduledCallStatus) ([]domain.ScheduledCall, error)
	UpdateCallID(ctx context.Context, id, callID string) error
	UpdateCallStatus(ctx context.Context, id, callStatus string) error
}

// InterviewLogStore persists call-placement logs.
type InterviewLogStore interface {
	Create(ctx context.Context, log *domain.InterviewLog) error
}

// TranscriptStore persists terminal call artifacts.
type TranscriptStore interface {
	Create(ctx context.Context, call *domain.TranscribedCall) error
	ListByAdmin(ctx context.Context, adminID string) ([]domain.TranscribedCall, error)
}

// OrchestratorConfig holds the fixed call identifiers and the polling bounds.
type OrchestratorConfig struct {
	AssistantID   string
	PhoneNumberID string
	PollInterval  time.Duration
	PollAttempts  int
}

// Orchestrator places outbound calls and drives each one from placement to a
// terminal, persisted outcome. Every placed call gets a detached polling task
// that re-checks the provider until the call ends or the attempt budget runs
// out. Tasks are owned by a registry keyed by call id so in-flight polls can
// be observed and cancelled.
//
// The orchestrator is the only writer of ScheduledCall.call_id/call_status and
// of the InterviewLog and TranscribedCall collections. Writes are issued as
// independent best-effort operations with no transaction across them;
// consistency is eventual and last-write-wins.
type Orchestrator struct {
	provider    CallProvider
	calls       ScheduledCallStore
	logs        InterviewLogStore
	transcripts TranscriptStore
	cfg         OrchestratorConfig

	mu    sync.Mutex
	tasks map[string]*pollTask
	wg    sync.WaitGroup
}

// pollTask tracks one detached polling sequence.
type pollTask struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewOrchestrator creates an orchestrator over the given provider and stores.
func NewOrchestrator(
	provider CallProvider,
	calls ScheduledCallStore,
	logs InterviewLogStore,
	transcripts TranscriptStore,
	cfg OrchestratorConfig,
) *Orchestrator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = 10
	}
	return &Orchestrator{
		provider:    provider,
		calls:       calls,
		logs:        logs,
		transcripts: transcripts,
		cfg:         cfg,
		tasks:       make(map[string]*pollTask),
	}
}

// PlaceCallRequest carries the caller input for placing a call.
type PlaceCallRequest struct {
	Name            string `json:"name"`
	Number          string `json:"number"`
	AdminID         string `json:"admin_id"`
	ScheduledCallID string `json:"scheduled_call_id"`
}

// PlaceCall places an outbound call for a scheduled interview. On success it
// records an interview log, links the scheduled call to the provider's call
// id, and starts the detached polling sequence. The provider call object is
// returned immediately; the voice interaction continues asynchronously.
//
// The log insert and call-id update are advisory bookkeeping: the call is
// already live at the provider, so their failures are logged and swallowed
// rather than rolled back.
func (o *Orchestrator) PlaceCall(ctx context.Context, req *PlaceCallRequest) (*vapi.Call, error) {
	if req.Number == "" || req.AdminID == "" || req.ScheduledCallID == "" {
		return nil, NewValidationError("missing 'number', 'admin_id', or 'scheduled_call_id'")
	}

	name := req.Name
	if name == "" {
		name = "User"
	}

	logger.CtxInfo(ctx, "Initiating call to %s at %s", name, req.Number)

	call, err := o.provider.CreateCall(ctx, &vapi.CreateCallRequest{
		AssistantID:   o.cfg.AssistantID,
		PhoneNumberID: o.cfg.PhoneNumberID,
		Customer:      vapi.Customer{Name: name, Number: req.Number},
	})
	if err != nil {
		logger.CtxError(ctx, "Call placement failed: %v", err)
		return nil, err
	}

	ctx = logger.SetCallID(ctx, call.ID)

	if err := o.logs.Create(ctx, &domain.InterviewLog{
		AdminID:            req.AdminID,
		ScheduledCallID:    req.ScheduledCallID,
		CallID:             call.ID,
		AssistantID:        call.AssistantID,
		PhoneNumberID:      call.PhoneNumberID,
		Status:             call.Status,
		PhoneCallProvider:  call.PhoneCallProvider,
		PhoneCallTransport: call.PhoneCallTransport,
		CallResponse:       domain.JSONMap(call.Raw),
	}); err != nil {
		logger.CtxError(ctx, "Failed to save interview log: %v", err)
	}

	if err := o.calls.UpdateCallID(ctx, req.ScheduledCallID, call.ID); err != nil {
		logger.CtxError(ctx, "Failed to link call to scheduled call %s: %v", req.ScheduledCallID, err)
	}

	o.startPolling(call.ID, req.ScheduledCallID, req.AdminID)

	return call, nil
}

// GetCallDetails fetches the current provider state of a call.
func (o *Orchestrator) GetCallDetails(ctx context.Context, callID string) (*vapi.Call, error) {
	if callID == "" {
		return nil, NewValidationError("missing callId")
	}
	return o.provider.GetCall(ctx, callID)
}

// StoreTranscript is the on-demand counterpart of the automatic completion
// write: it fetches the call synchronously and persists its transcript.
// Unlike the polling path, provider and persistence failures are returned to
// the caller.
func (o *Orchestrator) StoreTranscript(ctx context.Context, callID, scheduledCallID string) (*vapi.Call, error) {
	if callID == "" || scheduledCallID == "" {
		return nil, NewValidationError("missing call_id or scheduled_call_id")
	}

	call, err := o.provider.GetCall(ctx, callID)
	if err != nil {
		return nil, err
	}

	adminID := o.lookupAdminID(ctx, scheduledCallID)
	if err := o.transcripts.Create(ctx, buildTranscript(call, scheduledCallID, adminID)); err != nil {
		return nil, &PersistenceError{Op: "insert transcribed call", Err: err}
	}

	return call, nil
}

// ListTranscripts returns an admin's stored transcripts, newest first.
func (o *Orchestrator) ListTranscripts(ctx context.Context, adminID string) ([]domain.TranscribedCall, error) {
	if adminID == "" {
		return nil, NewValidationError("missing admin_id in query")
	}
	calls, err := o.transcripts.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, &PersistenceError{Op: "list transcribed calls", Err: err}
	}
	return calls, nil
}

// Pending reports whether a polling sequence is still running for the call.
func (o *Orchestrator) Pending(callID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.tasks[callID]
	return ok
}

// Cancel stops the polling sequence for a call, if one is running. Returns
// true when a sequence was found and cancelled.
func (o *Orchestrator) Cancel(callID string) bool {
	o.mu.Lock()
	task, ok := o.tasks[callID]
	o.mu.Unlock()
	if !ok {
		return false
	}
	task.cancel()
	<-task.done
	return true
}

// Shutdown cancels every in-flight polling sequence and waits for them to
// finish. Safe to call once during process teardown.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	for _, task := range o.tasks {
		task.cancel()
	}
	o.mu.Unlock()
	o.wg.Wait()
}

// startPolling registers and launches the detached polling sequence for a
// placed call. The sequence runs independently of the request that created it.
func (o *Orchestrator) startPolling(callID, scheduledCallID, adminID string) {
	pollCtx, cancel := context.WithCancel(context.Background())
	pollCtx = logger.WithFields(pollCtx, logger.Fields{
		logger.FieldComponent:       "poller",
		logger.FieldCallID:          callID,
		logger.FieldScheduledCallID: scheduledCallID,
	})

	task := &pollTask{cancel: cancel, done: make(chan struct{})}

	o.mu.Lock()
	o.tasks[callID] = task
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer func() {
			close(task.done)
			o.mu.Lock()
			if o.tasks[callID] == task {
				delete(o.tasks, callID)
			}
			o.mu.Unlock()
			o.wg.Done()
		}()
		o.poll(pollCtx, callID, scheduledCallID, adminID)
	}()
}

// poll runs the bounded status-check sequence for one placed call. Attempts
// are strictly sequential: the next tick is not armed until the previous
// attempt's provider call and any resulting write have finished. Attempt
// errors consume budget; exhausting the budget abandons the call silently.
func (o *Orchestrator) poll(ctx context.Context, callID, scheduledCallID, adminID string) {
	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= o.cfg.PollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			logger.CtxInfo(ctx, "Polling cancelled for call %s", callID)
			return
		case <-ticker.C:
		}

		logger.With(logger.Fields{logger.FieldAttempt: attempt}).
			Info(ctx, "Polling call status for %s", callID)

		call, err := o.provider.GetCall(ctx, callID)
		if err != nil {
			logger.CtxError(ctx, "Error polling call status: %v", err)
			continue
		}

		if call.Ended() {
			o.completeCall(ctx, call, scheduledCallID, adminID)
			return
		}
	}

	logger.CtxInfo(ctx, "Stopping polling for call %s after %d attempts", callID, o.cfg.PollAttempts)
}

// completeCall performs the completion write: persist the transcript and mark
// the scheduled call completed. The two writes are independent; neither
// failure blocks the other, and neither propagates — the sequence has no
// caller to report to. A duplicate transcript insert means another sequence
// already completed this call and is downgraded to a warning.
func (o *Orchestrator) completeCall(ctx context.Context, call *vapi.Call, scheduledCallID, adminID string) {
	logger.CtxInfo(ctx, "Call has ended, saving transcript and updating scheduled call")

	if err := o.transcripts.Create(ctx, buildTranscript(call, scheduledCallID, adminID)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.CtxWarn(ctx, "Transcript already stored for call %s", call.ID)
		} else {
			logger.CtxError(ctx, "Failed to insert transcribed call: %v", err)
		}
	}

	if err := o.calls.UpdateCallStatus(ctx, scheduledCallID, domain.CallStatusCompleted); err != nil {
		logger.CtxError(ctx, "Failed to update scheduled call status: %v", err)
	}
}

// lookupAdminID resolves the owning admin from the scheduled call. Best
// effort: a missing row leaves the transcript unscoped rather than failing
// the store.
func (o *Orchestrator) lookupAdminID(ctx context.Context, scheduledCallID string) string {
	sc, err := o.calls.GetByID(ctx, scheduledCallID)
	if err != nil {
		logger.CtxWarn(ctx, "Could not resolve admin for scheduled call %s: %v", scheduledCallID, err)
		return ""
	}
	return sc.AdminID
}

// buildTranscript maps a terminal provider call payload onto the stored
// transcript row. Recording URL and summary fall back from the top-level
// fields to the nested artifact/analysis fields.
func buildTranscript(call *vapi.Call, scheduledCallID, adminID string) *domain.TranscribedCall {
	t := &domain.TranscribedCall{
		ID:              call.ID,
		ScheduledCallID: scheduledCallID,
		AdminID:         adminID,
		AssistantID:     call.AssistantID,
		PhoneNumberID:   call.PhoneNumberID,
		Type:            call.Type,
		CreatedAt:       call.CreatedAt,
		UpdatedAt:       call.UpdatedAt,
		StartedAt:       call.StartedAt,
		EndedAt:         call.EndedAt,
		Transcript:      call.Transcript,
		Status:          call.Status,
		RawData:         domain.JSONMap(call.Raw),
	}
	if url := call.ResolveRecordingURL(); url != "" {
		t.RecordingURL = &url
	}
	if summary := call.ResolveSummary(); summary != "" {
		t.Summary = &summary
	}
	if call.EndedReason != "" {
		reason := call.EndedReason
		t.EndedReason = &reason
	}
	return t
}
