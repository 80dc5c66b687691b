package model

import "time"

// Gestor is the manager-side profile, sharing its ID with the parent Usuario
// like Cliente does. CNPJ is the 14-digit tax identifier, digits only.
type Gestor struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	SenhaHash string `gorm:"not null"`
	CNPJ      string `gorm:"type:varchar(14);uniqueIndex;not null;column:cnpj"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Estacionamentos []Estacionamento `gorm:"foreignKey:GestorID"`
}

// TableName keeps the Portuguese plural — GORM would otherwise pluralize
// to "gestors".
func (Gestor) TableName() string { return "gestores" }
