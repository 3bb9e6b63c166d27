package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"team-generator/internal/domain"
)

// Storage хранит состав в памяти процесса. Данные не переживают перезапуск.
type Storage struct {
	mu      sync.RWMutex
	players []domain.Participant
	index   map[string]int
	result  *domain.AllocationResult
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		index: make(map[string]int),
	}
}

// AddParticipant добавляет игрока в конец состава и возвращает новый размер состава.
// limit <= 0 снимает ограничение на размер.
func (s *Storage) AddParticipant(ctx context.Context, p domain.Participant, limit int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[p.ID]; ok {
		return len(s.players), fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.ID)
	}
	// Проверка и вставка под одной блокировкой, чтобы не превысить лимит при конкурентных вызовах.
	if limit > 0 && len(s.players) >= limit {
		return len(s.players), domain.ErrRosterFull
	}
	s.index[p.ID] = len(s.players)
	s.players = append(s.players, p)
	return len(s.players), nil
}

// RemoveParticipant удаляет игрока и возвращает удалённое значение.
func (s *Storage) RemoveParticipant(ctx context.Context, id string) (domain.Participant, error) {
	if err := ctx.Err(); err != nil {
		return domain.Participant{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return domain.Participant{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	removed := s.players[pos]
	s.players = slices.Delete(s.players, pos, pos+1)
	delete(s.index, id)
	for i := pos; i < len(s.players); i++ {
		s.index[s.players[i].ID] = i
	}
	return removed, nil
}

// ListParticipants возвращает копию состава в порядке добавления.
func (s *Storage) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.players), nil
}

func (s *Storage) CountParticipants(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

// Reset очищает состав и результат распределения.
func (s *Storage) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.index = make(map[string]int)
	s.result = nil
	return nil
}

// SaveResult заменяет текущее распределение.
func (s *Storage) SaveResult(ctx context.Context, result domain.AllocationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	return nil
}

// GetResult возвращает текущее распределение, второй результат false, если его нет.
func (s *Storage) GetResult(ctx context.Context) (domain.AllocationResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.AllocationResult{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return domain.AllocationResult{}, false, nil
	}
	return *s.result, true, nil
}

func (s *Storage) ClearResult(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	return nil
}
