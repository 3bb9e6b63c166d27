package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"team-generator/internal/app"
	"team-generator/internal/config"
	"team-generator/internal/logging"
)

func main() {
	var (
		rosterPath = flag.String("roster", "roster.yaml", "YAML-файл со списком игроков")
		policy     = flag.String("policy", "", "Стратегия распределения: balanced или random (по умолчанию из конфигурации)")
		seed       = flag.Int64("seed", 0, "Seed генератора случайных чисел, 0 - из конфигурации")
	)
	flag.Parse()

	// os.Exit вызывается только здесь, когда отложенные вызовы run уже выполнены.
	if err := run(*rosterPath, *policy, *seed); err != nil {
		os.Exit(1)
	}
}

func run(rosterPath, policy string, seed int64) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		return err
	}
	applyFlags(&cfg, policy, seed)

	cleanup, err := setupLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup logger:", err)
		return err
	}
	defer cleanup()

	application, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to init app", logging.ErrorAttrs(err)...)
		return err
	}

	if err := application.Run(ctx, rosterPath, os.Stdout); err != nil {
		slog.ErrorContext(logging.ErrorCtx(ctx, err), "failed to create teams", logging.ErrorAttrs(err)...)
		return err
	}
	return nil
}

// applyFlags переопределяет значения конфигурации флагами командной строки.
func applyFlags(cfg *config.Config, policy string, seed int64) {
	if policy != "" {
		cfg.Allocation.Policy = policy
	}
	if seed != 0 {
		cfg.Allocation.Seed = seed
	}
}

// setupLogger ставит JSON-логгер с контекстными полями по умолчанию.
// stdout занят таблицами команд, поэтому пустой output означает stderr.
// Возвращённая функция закрывает файл логов, если он был открыт.
func setupLogger(cfg config.Config, stderr io.Writer) (func(), error) {
	writer, closer, err := openLogOutput(cfg.Logging.Output, stderr)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	handler := logging.NewLoggerImpl(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(slog.New(handler))

	return func() {
		if closer != nil {
			_ = closer.Close()
		}
	}, nil
}

func openLogOutput(output string, stderr io.Writer) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}
