package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"team-generator/internal/allocator"
	"team-generator/internal/config"
	"team-generator/internal/domain"
	"team-generator/internal/infrastructure/randomizer"
	"team-generator/internal/logging"
	"team-generator/internal/metrics"
	"team-generator/internal/render"
	"team-generator/internal/repository"
	"team-generator/internal/service"
)

// App собирает зависимости и выполняет один запуск генератора команд.
type App struct {
	cfg    config.Config
	policy domain.Policy
	svc    *service.Service
}

// New подготавливает все зависимости приложения: хранилище состава, алгоритм распределения, сервис.
func New(cfg config.Config) (*App, error) {
	policy, err := domain.ParsePolicy(cfg.Allocation.Policy)
	if err != nil {
		return nil, err
	}

	var rnd randomizer.Randomizer
	if cfg.Allocation.Seed != 0 {
		rnd = randomizer.NewSeeded(cfg.Allocation.Seed)
	} else {
		rnd = randomizer.New()
	}

	var opts []allocator.Option
	if len(cfg.Allocation.TeamNames) == 2 {
		opts = append(opts, allocator.WithTeamNames(cfg.Allocation.TeamNames[0], cfg.Allocation.TeamNames[1]))
	}

	repo := repository.New()
	svc := service.New(repo, cfg, allocator.New(rnd, opts...))

	return &App{
		cfg:    cfg,
		policy: policy,
		svc:    svc,
	}, nil
}

// Run загружает состав из файла, распределяет игроков и печатает команды в out.
func (a *App) Run(ctx context.Context, rosterPath string, out io.Writer) error {
	ctx = logging.WithLogOperationID(ctx, uuid.NewString())

	roster, err := ReadRosterFile(rosterPath)
	if err != nil {
		return err
	}
	for i, entry := range roster.Players {
		if _, err := a.svc.AddPlayer(ctx, entry.Name, entry.Skill); err != nil {
			return fmt.Errorf("roster entry %d (%q): %w", i+1, entry.Name, err)
		}
	}

	players, err := a.svc.Players(ctx)
	if err != nil {
		return err
	}
	if err := render.Roster(out, players, a.cfg.Roster.MaxPlayers); err != nil {
		return fmt.Errorf("render roster: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	result, err := a.svc.CreateTeams(ctx, a.policy)
	if err != nil {
		return err
	}
	if err := render.Teams(out, result, a.policy); err != nil {
		return fmt.Errorf("render teams: %w", err)
	}

	if path := a.cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			// Выгрузка метрик не должна ломать результат запуска.
			slog.WarnContext(ctx, "failed to write metrics textfile", "path", path, "error", err)
		}
	}
	return nil
}
