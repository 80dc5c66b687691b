package repository

import (
	"context"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type ReservaRepository interface {
	CreateTx(tx *gorm.DB, r *model.Reserva) error
	FindByID(ctx context.Context, id uint) (*model.Reserva, error)
	// ListAtivasPorVagaEData feeds the overlap check: every ATIVA reservation
	// for the space on the date, regardless of time window.
	ListAtivasPorVagaEData(ctx context.Context, vagaID uint, data time.Time) ([]model.Reserva, error)
	ListByCliente(ctx context.Context, clienteID uint) ([]model.Reserva, error)
	UpdateTx(tx *gorm.DB, r *model.Reserva) error
	DB() *gorm.DB
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) CreateTx(tx *gorm.DB, res *model.Reserva) error {
	return tx.Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uint) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).Preload("Vaga").First(&res, id).Error
	return &res, err
}

func (r *reservaRepo) ListAtivasPorVagaEData(ctx context.Context, vagaID uint, data time.Time) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Where("vaga_id = ? AND data = ? AND status = ?", vagaID, data.Format("2006-01-02"), model.ReservaAtiva).
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListByCliente(ctx context.Context, clienteID uint) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Veiculo").
		Preload("Vaga").
		Preload("Vaga.Estacionamento").
		Preload("Vaga.Estacionamento.Endereco").
		Where("cliente_id = ?", clienteID).
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) UpdateTx(tx *gorm.DB, res *model.Reserva) error {
	return tx.Save(res).Error
}

func (r *reservaRepo) DB() *gorm.DB { return r.db }
