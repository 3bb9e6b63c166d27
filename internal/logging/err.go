package logging

import (
	"context"
	"errors"
)

// OperationError хранит снимок контекста логирования на момент ошибки,
// чтобы вызывающий код мог залогировать её с теми же полями.
type OperationError struct {
	err error
	ctx logCtx
}

func (e *OperationError) Error() string {
	return e.err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.err
}

// Operation возвращает имя операции, в которой возникла ошибка.
func (e *OperationError) Operation() string {
	return e.ctx.Operation
}

// Policy возвращает стратегию распределения, если она была задана.
func (e *OperationError) Policy() string {
	return e.ctx.Policy
}

// WrapError прикрепляет к ошибке поля из ctx. Уже обёрнутая ошибка возвращается как есть:
// самый глубокий снимок содержит больше всего подробностей.
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return err
	}
	c, _ := ctx.Value(key).(logCtx)
	return &OperationError{err: err, ctx: c}
}

// ErrorCtx переносит поля из ошибки в ctx. Поля, уже заданные в ctx, но пустые в ошибке, сохраняются.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		return ctx
	}
	current, _ := ctx.Value(key).(logCtx)
	merged := opErr.ctx
	merged.merge(current)
	return context.WithValue(ctx, key, merged)
}

// ErrorAttrs возвращает атрибуты для записи об ошибке: operation и policy, если известны.
func ErrorAttrs(err error) []any {
	attrs := []any{"error", err}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		if op := opErr.Operation(); op != "" {
			attrs = append(attrs, "failed_operation", op)
		}
		if p := opErr.Policy(); p != "" {
			attrs = append(attrs, "failed_policy", p)
		}
	}
	return attrs
}
