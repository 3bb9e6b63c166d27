package logging

import "context"

func update(ctx context.Context, fn func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogOperationID добавляет ID операции в контекст.
func WithLogOperationID(ctx context.Context, operationID string) context.Context {
	return update(ctx, func(c *logCtx) { c.OperationID = operationID })
}

// WithLogOperation добавляет имя операции в контекст.
func WithLogOperation(ctx context.Context, operation string) context.Context {
	return update(ctx, func(c *logCtx) { c.Operation = operation })
}

// WithLogDuration добавляет длительность операции в контекст.
func WithLogDuration(ctx context.Context, duration string) context.Context {
	return update(ctx, func(c *logCtx) { c.Duration = duration })
}

// WithLogPolicy добавляет стратегию распределения в контекст.
func WithLogPolicy(ctx context.Context, policy string) context.Context {
	return update(ctx, func(c *logCtx) { c.Policy = policy })
}

// WithLogPlayersCount добавляет количество игроков в контекст.
func WithLogPlayersCount(ctx context.Context, cnt int) context.Context {
	return update(ctx, func(c *logCtx) { c.PlayersCount = cnt })
}

// WithLogPlayerID добавляет ID игрока в контекст.
func WithLogPlayerID(ctx context.Context, playerID string) context.Context {
	return update(ctx, func(c *logCtx) { c.PlayerID = playerID })
}

// WithLogPlayerName добавляет имя игрока в контекст.
func WithLogPlayerName(ctx context.Context, name string) context.Context {
	return update(ctx, func(c *logCtx) { c.PlayerName = name })
}

// WithLogSkillGap добавляет разницу навыков команд в контекст.
func WithLogSkillGap(ctx context.Context, gap int) context.Context {
	return update(ctx, func(c *logCtx) { c.SkillGap = gap })
}
