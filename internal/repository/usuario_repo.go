package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository covers the base identity row only. Creation and deletion
// are always part of a larger transaction with the profile row, hence the Tx
// variants; there is no Update — identities are immutable after creation.
type UsuarioRepository interface {
	CreateTx(tx *gorm.DB, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	DeleteTx(tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) CreateTx(tx *gorm.DB, u *model.Usuario) error {
	return tx.Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Usuario{}, id).Error
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }
