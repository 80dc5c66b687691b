package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type TarifaRepository interface {
	Create(ctx context.Context, t *model.Tarifa) error
	FindByID(ctx context.Context, id uint) (*model.Tarifa, error)
	FindByEstacionamentoETipo(ctx context.Context, estacionamentoID uint, tipo model.TipoVaga) (*model.Tarifa, error)
	ListByEstacionamento(ctx context.Context, estacionamentoID uint) ([]model.Tarifa, error)
	Update(ctx context.Context, t *model.Tarifa) error
	Delete(ctx context.Context, id uint) error
}

type tarifaRepo struct{ db *gorm.DB }

func NewTarifaRepository(db *gorm.DB) TarifaRepository { return &tarifaRepo{db: db} }

func (r *tarifaRepo) Create(ctx context.Context, t *model.Tarifa) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tarifaRepo) FindByID(ctx context.Context, id uint) (*model.Tarifa, error) {
	var t model.Tarifa
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tarifaRepo) FindByEstacionamentoETipo(ctx context.Context, estacionamentoID uint, tipo model.TipoVaga) (*model.Tarifa, error) {
	var t model.Tarifa
	err := r.db.WithContext(ctx).
		Where("estacionamento_id = ? AND tipo_vaga = ?", estacionamentoID, tipo).
		First(&t).Error
	return &t, err
}

func (r *tarifaRepo) ListByEstacionamento(ctx context.Context, estacionamentoID uint) ([]model.Tarifa, error) {
	var tarifas []model.Tarifa
	err := r.db.WithContext(ctx).
		Where("estacionamento_id = ?", estacionamentoID).
		Order("tipo_vaga ASC").Find(&tarifas).Error
	return tarifas, err
}

func (r *tarifaRepo) Update(ctx context.Context, t *model.Tarifa) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tarifaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tarifa{}, id).Error
}
