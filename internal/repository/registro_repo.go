package repository

import (
	"context"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type RegistroAcessoRepository interface {
	CreateTx(tx *gorm.DB, reg *model.RegistroAcesso) error
	FindByID(ctx context.Context, id uint) (*model.RegistroAcesso, error)
	// ListAbertos returns records whose vehicle is still inside (saida IS NULL).
	ListAbertos(ctx context.Context) ([]model.RegistroAcesso, error)
	UpdateTx(tx *gorm.DB, reg *model.RegistroAcesso) error
	DB() *gorm.DB
}

type registroRepo struct{ db *gorm.DB }

func NewRegistroAcessoRepository(db *gorm.DB) RegistroAcessoRepository {
	return &registroRepo{db: db}
}

func (r *registroRepo) CreateTx(tx *gorm.DB, reg *model.RegistroAcesso) error {
	return tx.Create(reg).Error
}

func (r *registroRepo) FindByID(ctx context.Context, id uint) (*model.RegistroAcesso, error) {
	var reg model.RegistroAcesso
	err := r.db.WithContext(ctx).Preload("Veiculo").Preload("Vaga").First(&reg, id).Error
	return &reg, err
}

func (r *registroRepo) ListAbertos(ctx context.Context) ([]model.RegistroAcesso, error) {
	var regs []model.RegistroAcesso
	err := r.db.WithContext(ctx).Preload("Veiculo").Preload("Vaga").
		Where("saida IS NULL").
		Order("entrada ASC").Find(&regs).Error
	return regs, err
}

func (r *registroRepo) UpdateTx(tx *gorm.DB, reg *model.RegistroAcesso) error {
	return tx.Save(reg).Error
}

func (r *registroRepo) DB() *gorm.DB { return r.db }
