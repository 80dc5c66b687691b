package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type VeiculoRepository interface {
	Create(ctx context.Context, v *model.Veiculo) error
	FindByID(ctx context.Context, id uint) (*model.Veiculo, error)
	ExistePlaca(ctx context.Context, placa string, excetoID uint) (bool, error)
	ListByCliente(ctx context.Context, clienteID uint) ([]model.Veiculo, error)
	Update(ctx context.Context, v *model.Veiculo) error
	Delete(ctx context.Context, id uint) error
}

type veiculoRepo struct{ db *gorm.DB }

func NewVeiculoRepository(db *gorm.DB) VeiculoRepository { return &veiculoRepo{db: db} }

func (r *veiculoRepo) Create(ctx context.Context, v *model.Veiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *veiculoRepo) FindByID(ctx context.Context, id uint) (*model.Veiculo, error) {
	var v model.Veiculo
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *veiculoRepo) ExistePlaca(ctx context.Context, placa string, excetoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Veiculo{}).
		Where("placa = ? AND id <> ?", placa, excetoID).
		Count(&count).Error
	return count > 0, err
}

func (r *veiculoRepo) ListByCliente(ctx context.Context, clienteID uint) ([]model.Veiculo, error) {
	var veiculos []model.Veiculo
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("placa ASC").Find(&veiculos).Error
	return veiculos, err
}

func (r *veiculoRepo) Update(ctx context.Context, v *model.Veiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *veiculoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Veiculo{}, id).Error
}
