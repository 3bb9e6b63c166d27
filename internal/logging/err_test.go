package logging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapErrorKeepsOperationAndPolicy(t *testing.T) {
	ctx := WithLogOperation(context.Background(), "create_teams")
	ctx = WithLogPolicy(ctx, "random")
	boom := errors.New("boom")

	err := WrapError(ctx, boom)
	require.EqualError(t, err, "boom")
	require.ErrorIs(t, err, boom)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, "create_teams", opErr.Operation())
	require.Equal(t, "random", opErr.Policy())
}

func TestWrapErrorNil(t *testing.T) {
	require.NoError(t, WrapError(context.Background(), nil))
}

func TestWrapErrorKeepsInnermostSnapshot(t *testing.T) {
	inner := WrapError(WithLogOperation(context.Background(), "add_player"), errors.New("boom"))
	outer := WrapError(WithLogOperation(context.Background(), "run"), fmt.Errorf("entry 1: %w", inner))

	var opErr *OperationError
	require.True(t, errors.As(outer, &opErr))
	require.Equal(t, "add_player", opErr.Operation())
}

func TestErrorCtxMergesFields(t *testing.T) {
	err := WrapError(WithLogPlayerID(context.Background(), "p-1"), errors.New("boom"))

	ctx := ErrorCtx(WithLogOperationID(context.Background(), "op"), err)
	value, ok := ctx.Value(key).(logCtx)
	require.True(t, ok)
	require.Equal(t, "op", value.OperationID)
	require.Equal(t, "p-1", value.PlayerID)
}

func TestErrorCtxPlainError(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, ctx, ErrorCtx(ctx, errors.New("boom")))
}

func TestErrorAttrs(t *testing.T) {
	ctx := WithLogOperation(context.Background(), "create_teams")
	ctx = WithLogPolicy(ctx, "balanced")
	err := WrapError(ctx, errors.New("boom"))

	require.Equal(t, []any{"error", err, "failed_operation", "create_teams", "failed_policy", "balanced"}, ErrorAttrs(err))

	plain := errors.New("plain")
	require.Equal(t, []any{"error", plain}, ErrorAttrs(plain))
}

func TestErrorCtxPrefersErrorSnapshot(t *testing.T) {
	err := WrapError(WithLogOperation(context.Background(), "add_player"), errors.New("boom"))

	ctx := ErrorCtx(WithLogOperation(context.Background(), "run"), err)
	value := ctx.Value(key).(logCtx)
	require.Equal(t, "add_player", value.Operation)
}
