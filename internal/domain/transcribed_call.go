package domain

import "time"

// TranscribedCall is the terminal artifact of a completed call. The row is
// keyed by the external call id, written exactly once when the call is
// observed in its ended state, and immutable thereafter. A duplicate insert
// for the same id is a defined, recoverable condition.
type TranscribedCall struct {
	ID              string     `gorm:"type:text;primaryKey" json:"id"`
	ScheduledCallID string     `gorm:"type:text;index" json:"scheduled_call_id"`
	AdminID         string     `gorm:"type:text;index" json:"admin_id"`
	AssistantID     string     `gorm:"type:text" json:"assistant_id"`
	PhoneNumberID   string     `gorm:"type:text" json:"phone_number_id"`
	Type            string     `gorm:"type:text" json:"type"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Transcript      string     `gorm:"type:text" json:"transcript"`
	RecordingURL    *string    `gorm:"type:text" json:"recording_url,omitempty"`
	Summary         *string    `gorm:"type:text" json:"summary,omitempty"`
	Status          string     `gorm:"type:text" json:"status"`
	EndedReason     *string    `gorm:"type:text" json:"ended_reason,omitempty"`
	RawData         JSONMap    `gorm:"type:text" json:"raw_data"`
}

// TableName returns the database table name for TranscribedCall.
func (TranscribedCall) TableName() string {
	return "transcribed_calls"
}
