package repository

import (
	"context"

	"team-generator/internal/domain"
)

// Repository объединяет операции над составом и результатом распределения.
type Repository interface {
	RosterRepository
	ResultRepository
}

// RosterRepository содержит операции для работы с составом игроков.
type RosterRepository interface {
	AddParticipant(ctx context.Context, p domain.Participant, limit int) (int, error)
	RemoveParticipant(ctx context.Context, id string) (domain.Participant, error)
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	CountParticipants(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// ResultRepository хранит последнее распределение по командам.
type ResultRepository interface {
	SaveResult(ctx context.Context, result domain.AllocationResult) error
	GetResult(ctx context.Context) (domain.AllocationResult, bool, error)
	ClearResult(ctx context.Context) error
}
