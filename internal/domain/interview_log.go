package domain

import "time"

// InterviewLog is an append-only record of a single call placement. Exactly one
// row is written per successful placement; CallID is the join key back to the
// provider's call object. Rows are never updated.
type InterviewLog struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID            string    `gorm:"type:text;index" json:"admin_id"`
	ScheduledCallID    string    `gorm:"type:text;index" json:"scheduled_call_id"`
	CallID             string    `gorm:"type:text;index" json:"call_id"`
	AssistantID        string    `gorm:"type:text" json:"assistant_id"`
	PhoneNumberID      string    `gorm:"type:text" json:"phone_number_id"`
	Status             string    `gorm:"type:text" json:"status"`
	PhoneCallProvider  string    `gorm:"type:text" json:"phone_call_provider"`
	PhoneCallTransport string    `gorm:"type:text" json:"phone_call_transport"`
	CallResponse       JSONMap   `gorm:"type:text" json:"call_response"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName returns the database table name for InterviewLog.
func (InterviewLog) TableName() string {
	return "interview_logs"
}
