package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	// MinSkill и MaxSkill задают допустимый диапазон рейтинга игрока.
	MinSkill = 1
	MaxSkill = 10

	DefaultFirstTeamName  = "Team 1"
	DefaultSecondTeamName = "Team 2"
)

// Policy определяет стратегию распределения игроков по командам.
type Policy string

const (
	PolicyBalanced Policy = "balanced"
	PolicyRandom   Policy = "random"
)

// Valid сообщает, поддерживается ли стратегия.
func (p Policy) Valid() bool {
	return p == PolicyBalanced || p == PolicyRandom
}

// ParsePolicy разбирает строковое значение стратегии без учёта регистра.
func ParsePolicy(value string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, value)
	}
	return p, nil
}

// Participant описывает игрока с рейтингом. Значение не изменяется после создания.
type Participant struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Skill int    `json:"skill" yaml:"skill"`
}

// Team описывает команду и её участников.
type Team struct {
	Name       string        `json:"name"`
	Members    []Participant `json:"members"`
	TotalSkill int           `json:"total_skill"`
}

// NewTeam собирает команду и пересчитывает суммарный навык по участникам.
func NewTeam(name string, members []Participant) Team {
	if members == nil {
		members = []Participant{}
	}
	return Team{
		Name:       name,
		Members:    members,
		TotalSkill: SumSkill(members),
	}
}

// Size возвращает количество участников команды.
func (t Team) Size() int {
	return len(t.Members)
}

// SumSkill считает суммарный навык игроков.
func SumSkill(participants []Participant) int {
	return lo.SumBy(participants, func(p Participant) int {
		return p.Skill
	})
}

// AllocationResult содержит ровно две команды.
type AllocationResult struct {
	First  Team `json:"first"`
	Second Team `json:"second"`
}

// Teams возвращает обе команды в порядке нумерации.
func (r AllocationResult) Teams() [2]Team {
	return [2]Team{r.First, r.Second}
}

// SkillGap возвращает модуль разницы суммарных навыков команд.
func (r AllocationResult) SkillGap() int {
	gap := r.First.TotalSkill - r.Second.TotalSkill
	if gap < 0 {
		return -gap
	}
	return gap
}

// Size возвращает общее количество распределённых игроков.
func (r AllocationResult) Size() int {
	return r.First.Size() + r.Second.Size()
}
