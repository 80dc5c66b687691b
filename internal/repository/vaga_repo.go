package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type VagaRepository interface {
	Create(ctx context.Context, v *model.Vaga) error
	FindByID(ctx context.Context, id uint) (*model.Vaga, error)
	ListByEstacionamento(ctx context.Context, estacionamentoID uint) ([]model.Vaga, error)
	Update(ctx context.Context, v *model.Vaga) error
	// UpdateStatusTx flips the availability flag inside a caller-owned
	// transaction (reservation and access flows).
	UpdateStatusTx(tx *gorm.DB, id uint, status model.StatusVaga) error
	Delete(ctx context.Context, id uint) error
}

type vagaRepo struct{ db *gorm.DB }

func NewVagaRepository(db *gorm.DB) VagaRepository { return &vagaRepo{db: db} }

func (r *vagaRepo) Create(ctx context.Context, v *model.Vaga) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vagaRepo) FindByID(ctx context.Context, id uint) (*model.Vaga, error) {
	var v model.Vaga
	err := r.db.WithContext(ctx).Preload("Estacionamento").First(&v, id).Error
	return &v, err
}

func (r *vagaRepo) ListByEstacionamento(ctx context.Context, estacionamentoID uint) ([]model.Vaga, error) {
	var vagas []model.Vaga
	err := r.db.WithContext(ctx).
		Where("estacionamento_id = ?", estacionamentoID).
		Order("identificacao ASC").Find(&vagas).Error
	return vagas, err
}

func (r *vagaRepo) Update(ctx context.Context, v *model.Vaga) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vagaRepo) UpdateStatusTx(tx *gorm.DB, id uint, status model.StatusVaga) error {
	return tx.Model(&model.Vaga{}).Where("id = ?", id).Update("status", status).Error
}

func (r *vagaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Vaga{}, id).Error
}
