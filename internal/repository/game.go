package repository

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository/dao"
)

var (
	ErrGameNotFound = dao.ErrGameNotFound
)

type GameDAO interface {
	Insert(ctx context.Context, game dao.Game) (dao.Game, error)
	FindAll(ctx context.Context) ([]dao.Game, error)
	FindByID(ctx context.Context, id uint) (dao.Game, error)
	Update(ctx context.Context, game dao.Game) (dao.Game, error)
	Delete(ctx context.Context, id uint) error
}

type GameRepository struct {
	dao GameDAO
}

func NewGameRepository(dao GameDAO) *GameRepository {
	return &GameRepository{
		dao: dao,
	}
}

func gameDomainToDao(g domain.Game) dao.Game {
	return dao.Game{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}
}

func gameDaoToDomain(g dao.Game) domain.Game {
	return domain.Game{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}
}

func gamesDaoToDomain(games []dao.Game) []domain.Game {
	out := make([]domain.Game, len(games))
	for i, g := range games {
		out[i] = gameDaoToDomain(g)
	}
	return out
}

func (r *GameRepository) Create(ctx context.Context, game domain.Game) (domain.Game, error) {
	created, err := r.dao.Insert(ctx, gameDomainToDao(game))
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return gameDaoToDomain(created), nil
}

func (r *GameRepository) FindAll(ctx context.Context) ([]domain.Game, error) {
	games, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return gamesDaoToDomain(games), nil
}

func (r *GameRepository) FindByID(ctx context.Context, id uint) (domain.Game, error) {
	game, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return gameDaoToDomain(game), nil
}

func (r *GameRepository) Update(ctx context.Context, game domain.Game) (domain.Game, error) {
	updated, err := r.dao.Update(ctx, gameDomainToDao(game))
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return gameDaoToDomain(updated), nil
}

func (r *GameRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
