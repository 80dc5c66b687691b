package model

import "time"

// Estacionamento aggregates the parking lot with its address, phones, spaces
// and tariffs. Address and phones are created in the same write as the lot.
type Estacionamento struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);not null"`
	CNPJ      string `gorm:"type:varchar(14);uniqueIndex;not null;column:cnpj"`
	GestorID  uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Endereco  *Endereco  `gorm:"foreignKey:EstacionamentoID;constraint:OnDelete:CASCADE"`
	Telefones []Telefone `gorm:"foreignKey:EstacionamentoID;constraint:OnDelete:CASCADE"`
	Vagas     []Vaga     `gorm:"foreignKey:EstacionamentoID;constraint:OnDelete:CASCADE"`
	Tarifas   []Tarifa   `gorm:"foreignKey:EstacionamentoID;constraint:OnDelete:CASCADE"`
}

type Endereco struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	EstacionamentoID uint   `gorm:"uniqueIndex;not null"`
	Logradouro       string `gorm:"type:varchar(150);not null"`
	Numero           string `gorm:"type:varchar(10);not null"`
	Bairro           string `gorm:"type:varchar(100)"`
	Cidade           string `gorm:"type:varchar(100);not null"`
	Estado           string `gorm:"type:varchar(2);not null"`
	CEP              string `gorm:"type:varchar(8);not null;column:cep"`
}

type Telefone struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	EstacionamentoID uint   `gorm:"index;not null"`
	Numero           string `gorm:"type:varchar(15);not null"`
}
