package model

import "time"

type TipoVaga string

const (
	TipoVagaCarro TipoVaga = "CARRO"
	TipoVagaMoto  TipoVaga = "MOTO"
	TipoVagaVan   TipoVaga = "VAN"
)

type StatusVaga string

const (
	VagaDisponivel StatusVaga = "DISPONIVEL"
	VagaOcupada    StatusVaga = "OCUPADA"
)

// Vaga is a single parking space. Status is flipped by reservation and
// access-record flows, never directly by clients.
type Vaga struct {
	ID               uint       `gorm:"primaryKey;autoIncrement"`
	Identificacao    string     `gorm:"type:varchar(10);not null"`
	Tipo             TipoVaga   `gorm:"type:varchar(10);not null"`
	Status           StatusVaga `gorm:"type:varchar(10);not null;default:'DISPONIVEL'"`
	EstacionamentoID uint       `gorm:"index;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Estacionamento *Estacionamento `gorm:"foreignKey:EstacionamentoID"`
}
