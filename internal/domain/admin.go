package domain

import "time"

// Admin represents the dashboard operator. The current deployment is
// single-admin: reads return the first row.
type Admin struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Admin.
func (Admin) TableName() string {
	return "admin"
}
