package model

import "time"

// User mirrors the external identity provider; CognitoID is the unique
// identity-pool subject. Team/task back-references are derived relations.
type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	CognitoID      string  `gorm:"uniqueIndex;not null;column:cognito_id" json:"cognitoId"`
	Username       string  `gorm:"uniqueIndex;not null" json:"username"`
	ProfilePicture *string `gorm:"type:text;column:profile_picture" json:"profilePicture"`

	AssignedTasks   []Task           `gorm:"foreignKey:AssignedToID" json:"assignedTasks,omitempty"`
	TaskAssignments []TaskAssignment `gorm:"foreignKey:UserID" json:"taskAssignments,omitempty"`
	Teams           []*Team          `gorm:"many2many:team_members;joinForeignKey:UserID;joinReferences:TeamID" json:"teams,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
