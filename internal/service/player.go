package service

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository"
)

var (
	ErrPlayerNotFound = repository.ErrPlayerNotFound
)

type PlayerRepository interface {
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	FindAll(ctx context.Context) ([]domain.Player, error)
	FindByID(ctx context.Context, id uint) (domain.Player, error)
	Update(ctx context.Context, player domain.Player) (domain.Player, error)
	Delete(ctx context.Context, id uint) error
}

type PlayerService struct {
	repo       PlayerRepository
	recordRepo RecordRepository
}

func NewPlayerService(repo PlayerRepository, recordRepo RecordRepository) *PlayerService {
	return &PlayerService{
		repo:       repo,
		recordRepo: recordRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	players, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return players, nil
}

// GetPlayer returns a player together with their full game history.
func (s *PlayerService) GetPlayer(ctx context.Context, id uint) (domain.Player, []domain.HistoryEntry, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	history, err := s.recordRepo.FindHistoryByPlayerID(ctx, id)
	if err != nil {
		return domain.Player{}, nil, fmt.Errorf("s.recordRepo.FindHistoryByPlayerID -> %w", err)
	}

	return player, history, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.BirthYear != nil {
		normalized := domain.NormalizeBirthYear(*player.BirthYear)
		player.BirthYear = &normalized
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.BirthYear != nil {
		normalized := domain.NormalizeBirthYear(*player.BirthYear)
		player.BirthYear = &normalized
	}

	updated, err := s.repo.Update(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeletePlayer removes the player and every result attributed to them;
// unregistered results in the same records survive.
func (s *PlayerService) DeletePlayer(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
