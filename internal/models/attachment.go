package model

import "time"

// Attachment shares the comment ownership rules: cascade with the task,
// set-null on uploader deletion.
type Attachment struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	TaskID uint  `gorm:"not null;index" json:"taskId"`
	Task   *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`

	FileName string `gorm:"not null;column:file_name" json:"fileName"`
	FileURL  string `gorm:"type:text;not null;column:file_url" json:"fileUrl"`
	Type     string `gorm:"not null" json:"type"`
	Size     int64  `gorm:"not null" json:"size"`

	UserID *uint `json:"userId"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploadedAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
