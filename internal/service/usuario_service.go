package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioService owns the two-table identity+profile lifecycle. The identity
// row and its profile row are always written or removed as one atomic unit.
type UsuarioService interface {
	Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	// BuscarPorID returns (nil, nil) when the identity does not exist —
	// callers must check, absence is not an error on this path.
	BuscarPorID(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	Remover(ctx context.Context, id uint) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
	gestorRepo  repository.GestorRepository
}

func NewUsuarioService(
	usuarioRepo repository.UsuarioRepository,
	clienteRepo repository.ClienteRepository,
	gestorRepo repository.GestorRepository,
) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		clienteRepo: clienteRepo,
		gestorRepo:  gestorRepo,
	}
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// Uniqueness is checked against the profile table of the requested kind only:
// cliente and gestor emails live in separate namespaces. Then a single
// transaction inserts the identity row, captures the generated ID and inserts
// the profile row keyed by it. Rollback leaves no orphan on either side.

func (s *usuarioService) Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	perfil := model.Perfil(req.Perfil)

	switch perfil {
	case model.PerfilCliente:
		existe, err := s.clienteRepo.ExisteEmail(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("%w: %s", ErrEmailDuplicado, req.Email)
		}
	case model.PerfilGestor:
		existe, err := s.gestorRepo.ExisteEmail(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("%w: %s", ErrEmailDuplicado, req.Email)
		}
		existe, err = s.gestorRepo.ExisteCNPJ(ctx, *req.CNPJ, 0)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("%w: %s", ErrCNPJDuplicado, *req.CNPJ)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrValidacao, req.Perfil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{Perfil: perfil}
	txErr := runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.CreateTx(tx, usuario); err != nil {
			return err
		}
		switch perfil {
		case model.PerfilCliente:
			return s.clienteRepo.CreateTx(tx, &model.Cliente{
				ID:        usuario.ID,
				Nome:      req.Nome,
				Email:     req.Email,
				SenhaHash: string(hash),
			})
		case model.PerfilGestor:
			return s.gestorRepo.CreateTx(tx, &model.Gestor{
				ID:        usuario.ID,
				Nome:      req.Nome,
				Email:     req.Email,
				SenhaHash: string(hash),
				CNPJ:      *req.CNPJ,
			})
		default:
			return fmt.Errorf("%w: %q", ErrPerfilDesconhecido, perfil)
		}
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.UsuarioResponse{
		ID:     usuario.ID,
		Perfil: string(perfil),
		Nome:   req.Nome,
		Email:  req.Email,
		CNPJ:   req.CNPJ,
	}, nil
}

// ── BuscarPorID ───────────────────────────────────────────────────────────────

func (s *usuarioService) BuscarPorID(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	switch usuario.Perfil {
	case model.PerfilCliente:
		cliente, err := s.clienteRepo.FindByID(ctx, usuario.ID)
		if err != nil {
			return nil, err
		}
		return &dto.UsuarioResponse{
			ID:     usuario.ID,
			Perfil: string(usuario.Perfil),
			Nome:   cliente.Nome,
			Email:  cliente.Email,
		}, nil
	case model.PerfilGestor:
		gestor, err := s.gestorRepo.FindByID(ctx, usuario.ID)
		if err != nil {
			return nil, err
		}
		cnpj := gestor.CNPJ
		return &dto.UsuarioResponse{
			ID:     usuario.ID,
			Perfil: string(usuario.Perfil),
			Nome:   gestor.Nome,
			Email:  gestor.Email,
			CNPJ:   &cnpj,
		}, nil
	default:
		return nil, fmt.Errorf("%w: usuário %d com perfil %q", ErrPerfilDesconhecido, usuario.ID, usuario.Perfil)
	}
}

// ── Remover ───────────────────────────────────────────────────────────────────
// Profile row first, identity row second, one transaction.

func (s *usuarioService) Remover(ctx context.Context, id uint) error {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: usuário %d", ErrNaoEncontrado, id)
		}
		return err
	}

	return runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		switch usuario.Perfil {
		case model.PerfilCliente:
			if err := s.clienteRepo.DeleteTx(tx, id); err != nil {
				return err
			}
		case model.PerfilGestor:
			if err := s.gestorRepo.DeleteTx(tx, id); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: usuário %d com perfil %q", ErrPerfilDesconhecido, id, usuario.Perfil)
		}
		return s.usuarioRepo.DeleteTx(tx, id)
	})
}
