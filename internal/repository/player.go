package repository

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository/dao"
)

var (
	ErrPlayerNotFound = dao.ErrPlayerNotFound
)

type PlayerDAO interface {
	Insert(ctx context.Context, player dao.Player) (dao.Player, error)
	FindAll(ctx context.Context) ([]dao.Player, error)
	FindByID(ctx context.Context, id uint) (dao.Player, error)
	Update(ctx context.Context, player dao.Player) (dao.Player, error)
	Delete(ctx context.Context, id uint) error
}

type PlayerRepository struct {
	dao PlayerDAO
}

func NewPlayerRepository(dao PlayerDAO) *PlayerRepository {
	return &PlayerRepository{
		dao: dao,
	}
}

func playerDomainToDao(p domain.Player) dao.Player {
	return dao.Player{
		ID:        p.ID,
		Name:      p.Name,
		BirthYear: p.BirthYear,
		MBTI:      p.MBTI,
		Location:  p.Location,
	}
}

func playerDaoToDomain(p dao.Player) domain.Player {
	return domain.Player{
		ID:        p.ID,
		Name:      p.Name,
		BirthYear: p.BirthYear,
		MBTI:      p.MBTI,
		Location:  p.Location,
	}
}

func playersDaoToDomain(players []dao.Player) []domain.Player {
	out := make([]domain.Player, len(players))
	for i, p := range players {
		out[i] = playerDaoToDomain(p)
	}
	return out
}

func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := r.dao.Insert(ctx, playerDomainToDao(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return playerDaoToDomain(created), nil
}

func (r *PlayerRepository) FindAll(ctx context.Context) ([]domain.Player, error) {
	players, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return playersDaoToDomain(players), nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id uint) (domain.Player, error) {
	player, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return playerDaoToDomain(player), nil
}

func (r *PlayerRepository) Update(ctx context.Context, player domain.Player) (domain.Player, error) {
	updated, err := r.dao.Update(ctx, playerDomainToDao(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return playerDaoToDomain(updated), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
