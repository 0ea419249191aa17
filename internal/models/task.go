package model

import (
	"time"

	"github.com/okoye-peter/project-management-app/internal/constants"
)

// Task belongs to exactly one project and is cascade-deleted with it.
// The assignee and author references survive user deletion (set-null).
// Status and priority are nullable numeric enums; a task created without
// them stays null rather than defaulting.
type Task struct {
	ID          uint                    `gorm:"primaryKey" json:"id"`
	Title       string                  `gorm:"not null" json:"title"`
	Description *string                 `gorm:"type:text" json:"description"`
	Status      *constants.TaskStatus   `gorm:"index" json:"status"`
	Priority    *constants.TaskPriority `gorm:"index" json:"priority"`
	Tags        []string                `gorm:"serializer:json" json:"tags"`
	StartDate   *time.Time              `gorm:"index;column:start_date" json:"startDate"`
	DueDate     *time.Time              `gorm:"index;column:due_date" json:"dueDate"`
	Points      *int                    `json:"points"`

	ProjectID uint     `gorm:"not null;index" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`

	AssignedToID *uint `gorm:"index" json:"assignedToId"`
	AssignedTo   *User `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assignedTo,omitempty"`

	AssignedByID *uint `json:"assignedById"`
	AssignedBy   *User `gorm:"foreignKey:AssignedByID;constraint:OnDelete:SET NULL" json:"assignedBy,omitempty"`

	TaskAssignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"taskAssignments,omitempty"`
	Comments        []Comment        `gorm:"foreignKey:TaskID" json:"comments"`
	Attachments     []Attachment     `gorm:"foreignKey:TaskID" json:"attachments"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
