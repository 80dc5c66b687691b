package model

import "time"

// Veiculo belongs to a Cliente. Placa is stored normalized (uppercase, no
// hyphen) and is unique across the whole system.
type Veiculo struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	Placa     string   `gorm:"type:varchar(7);uniqueIndex;not null"`
	Modelo    string   `gorm:"type:varchar(50);not null"`
	Cor       string   `gorm:"type:varchar(30)"`
	Tipo      TipoVaga `gorm:"type:varchar(10);not null"`
	ClienteID uint     `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
