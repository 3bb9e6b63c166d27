package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"team-generator/internal/domain"
)

func mustAdd(t *testing.T, s *Storage, p domain.Participant, limit int) int {
	t.Helper()
	cnt, err := s.AddParticipant(context.Background(), p, limit)
	require.NoError(t, err)
	return cnt
}

func TestStorageAddListRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Equal(t, 1, mustAdd(t, s, domain.Participant{ID: "a", Name: "A", Skill: 1}, 0))
	require.Equal(t, 2, mustAdd(t, s, domain.Participant{ID: "b", Name: "B", Skill: 2}, 0))
	require.Equal(t, 3, mustAdd(t, s, domain.Participant{ID: "c", Name: "C", Skill: 3}, 0))

	removed, err := s.RemoveParticipant(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "B", removed.Name)

	players, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, []string{players[0].ID, players[1].ID})

	// Индекс после удаления должен указывать на новые позиции.
	removed, err = s.RemoveParticipant(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, "C", removed.Name)

	cnt, err := s.CountParticipants(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, cnt)
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()
	s := New()

	mustAdd(t, s, domain.Participant{ID: "a"}, 1)

	cnt, err := s.AddParticipant(ctx, domain.Participant{ID: "a"}, 0)
	require.ErrorIs(t, err, domain.ErrPlayerExists)
	require.Equal(t, 1, cnt)

	cnt, err = s.AddParticipant(ctx, domain.Participant{ID: "b"}, 1)
	require.ErrorIs(t, err, domain.ErrRosterFull)
	require.Equal(t, 1, cnt)

	_, err = s.RemoveParticipant(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestStorageListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustAdd(t, s, domain.Participant{ID: "a", Skill: 1}, 0)

	players, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	players[0].Skill = 10

	players, err = s.ListParticipants(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, players[0].Skill)
}

func TestStorageResultLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.GetResult(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	result := domain.AllocationResult{First: domain.NewTeam("A", nil), Second: domain.NewTeam("B", nil)}
	require.NoError(t, s.SaveResult(ctx, result))
	got, ok, err := s.GetResult(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, result, got)

	require.NoError(t, s.ClearResult(ctx))
	_, ok, err = s.GetResult(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	mustAdd(t, s, domain.Participant{ID: "a"}, 0)
	require.NoError(t, s.SaveResult(ctx, result))
	require.NoError(t, s.Reset(ctx))
	cnt, err := s.CountParticipants(ctx)
	require.NoError(t, err)
	require.Zero(t, cnt)
	_, ok, err = s.GetResult(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStorageRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	_, err := s.AddParticipant(ctx, domain.Participant{ID: "a"}, 0)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.ListParticipants(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorageLimitUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.AddParticipant(ctx, domain.Participant{ID: fmt.Sprintf("p%d", i)}, 10)
		}(i)
	}
	wg.Wait()

	cnt, err := s.CountParticipants(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, cnt)
}
