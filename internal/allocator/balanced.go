package allocator

import (
	"sort"

	"team-generator/internal/domain"
)

// AllocateBalanced распределяет игроков по убыванию навыка: каждый следующий
// попадает в команду с меньшей текущей суммой, при равенстве в первую.
// Чередование 1-2-2-1 получается само собой из этого правила.
func AllocateBalanced(participants []domain.Participant) domain.AllocationResult {
	return allocateBalanced(participants, domain.DefaultFirstTeamName, domain.DefaultSecondTeamName)
}

func allocateBalanced(participants []domain.Participant, firstName, secondName string) domain.AllocationResult {
	sorted := make([]domain.Participant, len(participants))
	copy(sorted, participants)
	// Стабильная сортировка: при равном навыке сохраняется исходный порядок.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skill > sorted[j].Skill
	})

	first := make([]domain.Participant, 0, (len(sorted)+1)/2)
	second := make([]domain.Participant, 0, len(sorted)/2)
	var firstSkill, secondSkill int
	for _, p := range sorted {
		if firstSkill <= secondSkill {
			first = append(first, p)
			firstSkill += p.Skill
		} else {
			second = append(second, p)
			secondSkill += p.Skill
		}
	}

	return domain.AllocationResult{
		First:  domain.NewTeam(firstName, first),
		Second: domain.NewTeam(secondName, second),
	}
}
