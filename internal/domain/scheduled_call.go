package domain

import "time"

// ScheduledCallStatus represents the scheduling state of an interview.
// Values include ScheduledCallStatusScheduled, ScheduledCallStatusCompleted,
// and ScheduledCallStatusCancelled.
type ScheduledCallStatus string

const (
	ScheduledCallStatusScheduled ScheduledCallStatus = "scheduled"
	ScheduledCallStatusCompleted ScheduledCallStatus = "completed"
	ScheduledCallStatusCancelled ScheduledCallStatus = "cancelled"
)

// CallStatusCompleted is the call_status marker written once a placed call is
// observed in its terminal state.
const CallStatusCompleted = "completed"

// ScheduledCall represents an intent to interview a candidate. CallID and
// CallStatus mirror the external provider's call and are written only by the
// call orchestrator; everything else is owned by the admin CRUD surface.
//
// InterviewDate is stored as YYYY-MM-DD and InterviewTime as HH:mm:ss so the
// trigger sweep can match rows against the current wall-clock minute.
type ScheduledCall struct {
	ID             string              `gorm:"type:text;primaryKey" json:"id"`
	CandidateName  string              `gorm:"type:text" json:"candidate_name"`
	CandidateEmail string              `gorm:"type:text" json:"candidate_email"`
	CandidatePhone string              `gorm:"type:text" json:"candidate_phone"`
	Position       string              `gorm:"type:text" json:"position"`
	InterviewDate  string              `gorm:"type:text" json:"interview_date"`
	InterviewTime  string              `gorm:"type:text" json:"interview_time"`
	ExpertID       string              `gorm:"type:text;index" json:"expert_id"`
	AdminID        string              `gorm:"type:text;index" json:"admin_id"`
	Notes          string              `gorm:"type:text" json:"notes"`
	Status         ScheduledCallStatus `gorm:"type:text;index;default:scheduled" json:"status"`
	CallID         string              `gorm:"type:text" json:"call_id"`
	CallStatus     string              `gorm:"type:text" json:"call_status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TableName returns the database table name for ScheduledCall.
func (ScheduledCall) TableName() string {
	return "scheduled_calls"
}
