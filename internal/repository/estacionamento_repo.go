package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type EstacionamentoRepository interface {
	// Create persists the lot together with its nested endereco and
	// telefones — GORM writes the whole graph in one transaction.
	Create(ctx context.Context, e *model.Estacionamento) error
	FindByID(ctx context.Context, id uint) (*model.Estacionamento, error)
	List(ctx context.Context) ([]model.Estacionamento, error)
	ListByGestor(ctx context.Context, gestorID uint) ([]model.Estacionamento, error)
	Update(ctx context.Context, e *model.Estacionamento) error
	ReplaceTelefones(ctx context.Context, estacionamentoID uint, telefones []model.Telefone) error
	Delete(ctx context.Context, id uint) error
}

type estacionamentoRepo struct{ db *gorm.DB }

func NewEstacionamentoRepository(db *gorm.DB) EstacionamentoRepository {
	return &estacionamentoRepo{db: db}
}

func (r *estacionamentoRepo) Create(ctx context.Context, e *model.Estacionamento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estacionamentoRepo) FindByID(ctx context.Context, id uint) (*model.Estacionamento, error) {
	var e model.Estacionamento
	err := r.db.WithContext(ctx).
		Preload("Endereco").
		Preload("Telefones").
		Preload("Vagas").
		Preload("Tarifas").
		First(&e, id).Error
	return &e, err
}

func (r *estacionamentoRepo) List(ctx context.Context) ([]model.Estacionamento, error) {
	var lots []model.Estacionamento
	err := r.db.WithContext(ctx).Preload("Endereco").Order("nome ASC").Find(&lots).Error
	return lots, err
}

func (r *estacionamentoRepo) ListByGestor(ctx context.Context, gestorID uint) ([]model.Estacionamento, error) {
	var lots []model.Estacionamento
	err := r.db.WithContext(ctx).Preload("Endereco").
		Where("gestor_id = ?", gestorID).
		Order("nome ASC").Find(&lots).Error
	return lots, err
}

func (r *estacionamentoRepo) Update(ctx context.Context, e *model.Estacionamento) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(e).Error
}

func (r *estacionamentoRepo) ReplaceTelefones(ctx context.Context, estacionamentoID uint, telefones []model.Telefone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("estacionamento_id = ?", estacionamentoID).Delete(&model.Telefone{}).Error; err != nil {
			return err
		}
		if len(telefones) == 0 {
			return nil
		}
		for i := range telefones {
			telefones[i].EstacionamentoID = estacionamentoID
		}
		return tx.Create(&telefones).Error
	})
}

func (r *estacionamentoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Endereco", "Telefones", "Vagas", "Tarifas").
		Delete(&model.Estacionamento{ID: id}).Error
}
