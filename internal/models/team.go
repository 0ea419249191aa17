package model

import "time"

// Team groups users under a product owner and project manager for one
// project. Membership lives in the team_members join table.
type Team struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	ProductOwnerID *uint `gorm:"column:product_owner_id" json:"productOwnerId"`
	ProductOwner   *User `gorm:"foreignKey:ProductOwnerID;constraint:OnDelete:SET NULL" json:"productOwner,omitempty"`

	ProjectManagerID *uint `gorm:"column:project_manager_id" json:"projectManagerId"`
	ProjectManager   *User `gorm:"foreignKey:ProjectManagerID;constraint:OnDelete:SET NULL" json:"projectManager,omitempty"`

	ProjectID *uint    `gorm:"index" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	Users []*User `gorm:"many2many:team_members;joinForeignKey:TeamID;joinReferences:UserID" json:"users,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
