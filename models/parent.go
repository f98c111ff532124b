package models

import "time"

// Relationship is the role a parent plays towards its children.
type Relationship string

const (
	RelationshipFather Relationship = "father"
	RelationshipMother Relationship = "mother"
)

// Valid reports whether r is one of the known relationships.
func (r Relationship) Valid() bool {
	switch r {
	case RelationshipFather, RelationshipMother:
		return true
	default:
		return false
	}
}

// Parent represents a father or mother in the database using GORM.
// It corresponds to the 'parent' table.
type Parent struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CPF          string       `gorm:"size:11;not null;uniqueIndex" json:"cpf"`
	Name         string       `gorm:"not null" json:"name"`
	Age          int          `gorm:"not null" json:"age"`
	Relationship Relationship `gorm:"size:16;not null;index" json:"relationship"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Back-references, only populated by GetWithChildren.
	// Deleting a parent clears the reference on its children.
	FatherOfChildren []Child `gorm:"foreignKey:FatherID;constraint:OnDelete:SET NULL" json:"fatherOfChildren,omitempty"`
	MotherOfChildren []Child `gorm:"foreignKey:MotherID;constraint:OnDelete:SET NULL" json:"motherOfChildren,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Parent) TableName() string {
	return "parent"
}
