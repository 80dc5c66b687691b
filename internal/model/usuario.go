package model

// Perfil discriminates which profile table owns a Usuario's data.
// Set once at creation, never updated.
type Perfil string

const (
	PerfilCliente Perfil = "CLIENTE"
	PerfilGestor  Perfil = "GESTOR"
)

// Valido reports whether p is one of the two known profile kinds.
func (p Perfil) Valido() bool {
	return p == PerfilCliente || p == PerfilGestor
}

// Usuario is the base identity record. It carries nothing but the profile
// discriminator; the actual profile data lives in clientes or gestores,
// keyed by this row's generated ID (shared-key one-to-one).
type Usuario struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Perfil Perfil `gorm:"type:varchar(10);not null"`

	Cliente *Cliente `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
	Gestor  *Gestor  `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}
