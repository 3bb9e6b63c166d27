package allocator

import (
	"fmt"

	"team-generator/internal/domain"
	"team-generator/internal/infrastructure/randomizer"
)

// Allocate выбирает стратегию распределения по policy.
// Неизвестная стратегия считается ошибкой вызывающего кода и возвращает domain.ErrInvalidPolicy.
func Allocate(participants []domain.Participant, policy domain.Policy, rnd randomizer.Randomizer) (domain.AllocationResult, error) {
	return New(rnd).Allocate(participants, policy)
}

// Allocator хранит источник случайности и названия команд.
// Состояния между вызовами нет, поэтому один Allocator можно использовать из разных горутин.
type Allocator struct {
	rnd        randomizer.Randomizer
	firstName  string
	secondName string
}

// Option настраивает Allocator.
type Option func(*Allocator)

// WithTeamNames задаёт названия команд. Пустые значения оставляют названия по умолчанию.
func WithTeamNames(first, second string) Option {
	return func(a *Allocator) {
		if first != "" {
			a.firstName = first
		}
		if second != "" {
			a.secondName = second
		}
	}
}

func New(rnd randomizer.Randomizer, opts ...Option) *Allocator {
	if rnd == nil {
		rnd = randomizer.New()
	}
	a := &Allocator{
		rnd:        rnd,
		firstName:  domain.DefaultFirstTeamName,
		secondName: domain.DefaultSecondTeamName,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate делит игроков на две команды согласно policy.
func (a *Allocator) Allocate(participants []domain.Participant, policy domain.Policy) (domain.AllocationResult, error) {
	switch policy {
	case domain.PolicyBalanced:
		return allocateBalanced(participants, a.firstName, a.secondName), nil
	case domain.PolicyRandom:
		return allocateRandom(participants, a.rnd, a.firstName, a.secondName), nil
	default:
		return domain.AllocationResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}
}
