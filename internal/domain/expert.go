package domain

import "time"

// ExpertStatus represents the availability of an expert.
type ExpertStatus string

const (
	ExpertStatusAvailable   ExpertStatus = "available"
	ExpertStatusUnavailable ExpertStatus = "unavailable"
)

// Expert represents a domain expert who can be matched against scheduled interviews.
type Expert struct {
	ID        string       `gorm:"type:text;primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text" json:"email"`
	Phone     string       `gorm:"type:text" json:"phone"`
	Specialty string       `gorm:"type:text" json:"specialty"`
	Location  string       `gorm:"type:text" json:"location"`
	Status    ExpertStatus `gorm:"type:text;default:available" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName returns the database table name for Expert.
func (Expert) TableName() string {
	return "experts"
}
