package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tarifa is the hourly price for one space type in one parking lot.
// One row per (estacionamento, tipo_vaga) pair.
type Tarifa struct {
	ID               uint            `gorm:"primaryKey;autoIncrement"`
	EstacionamentoID uint            `gorm:"not null;uniqueIndex:idx_tarifa_est_tipo,priority:1"`
	TipoVaga         TipoVaga        `gorm:"type:varchar(10);not null;uniqueIndex:idx_tarifa_est_tipo,priority:2"`
	ValorHora        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
