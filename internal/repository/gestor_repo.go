package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type GestorRepository interface {
	CreateTx(tx *gorm.DB, g *model.Gestor) error
	FindByID(ctx context.Context, id uint) (*model.Gestor, error)
	ExisteEmail(ctx context.Context, email string, excetoID uint) (bool, error)
	ExisteCNPJ(ctx context.Context, cnpj string, excetoID uint) (bool, error)
	List(ctx context.Context) ([]model.Gestor, error)
	Update(ctx context.Context, g *model.Gestor) error
	DeleteTx(tx *gorm.DB, id uint) error
}

type gestorRepo struct{ db *gorm.DB }

func NewGestorRepository(db *gorm.DB) GestorRepository { return &gestorRepo{db: db} }

func (r *gestorRepo) CreateTx(tx *gorm.DB, g *model.Gestor) error {
	return tx.Create(g).Error
}

func (r *gestorRepo) FindByID(ctx context.Context, id uint) (*model.Gestor, error) {
	var g model.Gestor
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *gestorRepo) ExisteEmail(ctx context.Context, email string, excetoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Gestor{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excetoID).
		Count(&count).Error
	return count > 0, err
}

func (r *gestorRepo) ExisteCNPJ(ctx context.Context, cnpj string, excetoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Gestor{}).
		Where("cnpj = ? AND id <> ?", cnpj, excetoID).
		Count(&count).Error
	return count > 0, err
}

func (r *gestorRepo) List(ctx context.Context) ([]model.Gestor, error) {
	var gestores []model.Gestor
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&gestores).Error
	return gestores, err
}

func (r *gestorRepo) Update(ctx context.Context, g *model.Gestor) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gestorRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Gestor{}, id).Error
}
