package model

import "time"

// Cliente is the client-side profile. ID is not generated here: it is the
// owning Usuario's ID, inserted in the same transaction as the identity row.
// Email is unique among clientes only — gestores have their own namespace.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	SenhaHash string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Veiculos []Veiculo `gorm:"foreignKey:ClienteID"`
}
