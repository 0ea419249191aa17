package model

import "time"

// Comment is cascade-deleted with its task; the authoring user reference
// is nulled if the user is deleted.
type Comment struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	TaskID uint  `gorm:"not null;index" json:"taskId"`
	Task   *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`

	UserID *uint `json:"userId"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	Text string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
