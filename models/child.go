package models

import "time"

// Child represents a son or daughter in the database using GORM.
// It corresponds to the 'child' table. Both parent references are optional.
type Child struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CPF       string    `gorm:"size:11;not null;uniqueIndex" json:"cpf"`
	Name      string    `gorm:"not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Sex       string    `json:"sex"`
	FatherID  *uint     `gorm:"index" json:"fatherId"`
	MotherID  *uint     `gorm:"index" json:"motherId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Father *Parent `gorm:"foreignKey:FatherID" json:"pai,omitempty"`
	Mother *Parent `gorm:"foreignKey:MotherID" json:"mae,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Child) TableName() string {
	return "child"
}
