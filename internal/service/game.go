package service

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository"
)

var (
	ErrGameNotFound = repository.ErrGameNotFound
)

type GameRepository interface {
	Create(ctx context.Context, game domain.Game) (domain.Game, error)
	FindAll(ctx context.Context) ([]domain.Game, error)
	FindByID(ctx context.Context, id uint) (domain.Game, error)
	Update(ctx context.Context, game domain.Game) (domain.Game, error)
	Delete(ctx context.Context, id uint) error
}

type GameService struct {
	repo GameRepository
}

func NewGameService(repo GameRepository) *GameService {
	return &GameService{
		repo: repo,
	}
}

func (s *GameService) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return games, nil
}

func (s *GameService) GetGame(ctx context.Context, id uint) (domain.Game, error) {
	game, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return game, nil
}

func (s *GameService) CreateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	created, err := s.repo.Create(ctx, game)
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GameService) UpdateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	updated, err := s.repo.Update(ctx, game)
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteGame removes the game, its records and their results.
func (s *GameService) DeleteGame(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
