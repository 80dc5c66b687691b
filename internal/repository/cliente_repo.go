package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	CreateTx(tx *gorm.DB, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	// ExisteEmail reports whether another cliente already owns the email.
	// excetoID is skipped — pass 0 on creation.
	ExisteEmail(ctx context.Context, email string, excetoID uint) (bool, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	DeleteTx(tx *gorm.DB, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) CreateTx(tx *gorm.DB, c *model.Cliente) error {
	return tx.Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) ExisteEmail(ctx context.Context, email string, excetoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excetoID).
		Count(&count).Error
	return count > 0, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Cliente{}, id).Error
}
