package model

import "time"

type StatusReserva string

const (
	ReservaAtiva     StatusReserva = "ATIVA"
	ReservaCancelada StatusReserva = "CANCELADA"
	ReservaConcluida StatusReserva = "CONCLUIDA"
	ReservaExpirada  StatusReserva = "EXPIRADA"
)

// Reserva books a Vaga for a time window on a given date. Times are stored
// as zero-padded "HH:MM:SS" strings so that lexicographic comparison matches
// chronological order, both in SQL and in Go.
type Reserva struct {
	ID         uint          `gorm:"primaryKey;autoIncrement"`
	Data       time.Time     `gorm:"type:date;not null;index:idx_reservas_vaga_data,priority:2"`
	HoraInicio string        `gorm:"type:varchar(8);not null"`
	HoraFim    string        `gorm:"type:varchar(8);not null"`
	Status     StatusReserva `gorm:"type:varchar(10);not null;default:'ATIVA'"`
	ClienteID  uint          `gorm:"index;not null"`
	VeiculoID  uint          `gorm:"index;not null"`
	VagaID     uint          `gorm:"not null;index:idx_reservas_vaga_data,priority:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
	Veiculo *Veiculo `gorm:"foreignKey:VeiculoID"`
	Vaga    *Vaga    `gorm:"foreignKey:VagaID"`
}
