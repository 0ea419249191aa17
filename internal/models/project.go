package model

import "time"

// Project owns tasks and teams. Deleting a project cascades to its tasks.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"index;column:start_date" json:"startDate"`
	DueDate     *time.Time `gorm:"index;column:due_date" json:"dueDate"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Teams []Team `gorm:"foreignKey:ProjectID" json:"teams,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
