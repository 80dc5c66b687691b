package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroAcesso tracks a vehicle physically occupying a space: Entrada is
// set when the gate opens, Saida and Valor when the vehicle leaves. Valor is
// ceil(hours) times the lot tariff for the space type.
type RegistroAcesso struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	VeiculoID uint       `gorm:"index;not null"`
	VagaID    uint       `gorm:"index;not null"`
	Entrada   time.Time  `gorm:"not null"`
	Saida     *time.Time
	Valor     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Veiculo *Veiculo `gorm:"foreignKey:VeiculoID"`
	Vaga    *Vaga    `gorm:"foreignKey:VagaID"`
}
