package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"team-generator/internal/config"
	"team-generator/internal/domain"
	"team-generator/internal/logging"
	"team-generator/internal/metrics"
	"team-generator/internal/repository"
)

// Repository описывает операции, которые требуются сервису.
type Repository interface {
	repository.Repository
}

// Allocator делит игроков на две команды.
type Allocator interface {
	Allocate(participants []domain.Participant, policy domain.Policy) (domain.AllocationResult, error)
}

// Service реализует правила работы с составом вокруг алгоритма распределения.
type Service struct {
	repo      Repository
	allocator Allocator
	cfg       config.RosterConfig
	newID     func() string
}

func New(repo Repository, cfg config.Config, allocator Allocator) *Service {
	svc := &Service{
		repo:      repo,
		allocator: allocator,
		cfg:       cfg.Roster,
		newID:     uuid.NewString,
	}
	if svc.cfg.MaxPlayers <= 0 {
		svc.cfg.MaxPlayers = 10
	}
	if svc.cfg.MinPlayers <= 0 {
		svc.cfg.MinPlayers = 2
	}
	return svc
}

// AddPlayer проверяет данные и добавляет игрока в состав. Текущие команды сбрасываются.
func (s *Service) AddPlayer(ctx context.Context, name string, skill int) (domain.Participant, error) {
	ctx = logging.WithLogOperation(ctx, "add_player")

	input, err := ValidatePlayer(PlayerInput{Name: name, Skill: skill})
	if err != nil {
		return domain.Participant{}, logging.WrapError(ctx, err)
	}
	player := domain.Participant{
		ID:    s.newID(),
		Name:  input.Name,
		Skill: input.Skill,
	}
	ctx = logging.WithLogPlayerID(ctx, player.ID)
	ctx = logging.WithLogPlayerName(ctx, player.Name)

	// Команды сбрасываются до изменения состава: ошибка после вставки оставила бы игрока в составе.
	if err := s.repo.ClearResult(ctx); err != nil {
		return domain.Participant{}, logging.WrapError(ctx, err)
	}
	cnt, err := s.repo.AddParticipant(ctx, player, s.cfg.MaxPlayers)
	if err != nil {
		return domain.Participant{}, logging.WrapError(ctx, fmt.Errorf("add player: %w", err))
	}
	metrics.IncPlayersAdded()

	ctx = logging.WithLogPlayersCount(ctx, cnt)
	slog.DebugContext(ctx, "player added", "skill", player.Skill)
	if cnt == s.cfg.MaxPlayers {
		slog.InfoContext(ctx, "roster is complete")
	}
	return player, nil
}

// RemovePlayer удаляет игрока из состава. Текущие команды сбрасываются.
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	ctx = logging.WithLogOperation(ctx, "remove_player")
	ctx = logging.WithLogPlayerID(ctx, id)

	if err := s.repo.ClearResult(ctx); err != nil {
		return logging.WrapError(ctx, err)
	}
	if _, err := s.repo.RemoveParticipant(ctx, id); err != nil {
		return logging.WrapError(ctx, fmt.Errorf("remove player: %w", err))
	}
	metrics.AddPlayersRemoved(1)
	slog.DebugContext(ctx, "player removed")
	return nil
}

// Players возвращает состав в порядке добавления.
func (s *Service) Players(ctx context.Context) ([]domain.Participant, error) {
	return s.repo.ListParticipants(ctx)
}

// CreateTeams распределяет текущий состав по командам и запоминает результат.
// Повторный вызов заново выполняет распределение.
func (s *Service) CreateTeams(ctx context.Context, policy domain.Policy) (domain.AllocationResult, error) {
	ctx = logging.WithLogOperation(ctx, "create_teams")
	ctx = logging.WithLogPolicy(ctx, string(policy))

	players, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return domain.AllocationResult{}, logging.WrapError(ctx, err)
	}
	ctx = logging.WithLogPlayersCount(ctx, len(players))
	if len(players) < s.cfg.MinPlayers {
		return domain.AllocationResult{}, logging.WrapError(ctx,
			fmt.Errorf("%w: have %d, need at least %d", domain.ErrNotEnoughPlayers, len(players), s.cfg.MinPlayers))
	}

	start := time.Now()
	result, err := s.allocator.Allocate(players, policy)
	if err != nil {
		return domain.AllocationResult{}, logging.WrapError(ctx, err)
	}
	took := time.Since(start)

	if err := s.repo.SaveResult(ctx, result); err != nil {
		return domain.AllocationResult{}, logging.WrapError(ctx, err)
	}
	metrics.ObserveAllocation(string(policy), result.SkillGap(), took)

	ctx = logging.WithLogDuration(ctx, took.String())
	ctx = logging.WithLogSkillGap(ctx, result.SkillGap())
	// skill_gap передаётся и явно: нулевые поля контекста в запись не попадают.
	slog.InfoContext(ctx, "teams created",
		"skill_gap", result.SkillGap(),
		"first_total", result.First.TotalSkill,
		"second_total", result.Second.TotalSkill,
	)
	return result, nil
}

// CurrentTeams возвращает последнее распределение, если состав не менялся после него.
func (s *Service) CurrentTeams(ctx context.Context) (domain.AllocationResult, bool, error) {
	return s.repo.GetResult(ctx)
}

// Reset очищает состав и команды.
func (s *Service) Reset(ctx context.Context) error {
	ctx = logging.WithLogOperation(ctx, "reset")

	cnt, err := s.repo.CountParticipants(ctx)
	if err != nil {
		return logging.WrapError(ctx, err)
	}
	if err := s.repo.Reset(ctx); err != nil {
		return logging.WrapError(ctx, err)
	}
	metrics.AddPlayersRemoved(cnt)
	slog.InfoContext(ctx, "roster reset", "removed", cnt)
	return nil
}
