package model

import "time"

// TaskAssignment joins a task to a user. A (taskId, userId) pair occurs at
// most once; rows are cascade-deleted when either side goes away.
type TaskAssignment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TaskID uint `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"taskId"`
	UserID uint `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"userId"`

	Task *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
