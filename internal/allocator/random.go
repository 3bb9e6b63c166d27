package allocator

import (
	"team-generator/internal/domain"
	"team-generator/internal/infrastructure/randomizer"
)

// AllocateRandom перемешивает игроков и делит их пополам: первая команда
// получает ceil(n/2) игроков. Баланс по навыку не учитывается.
func AllocateRandom(participants []domain.Participant, rnd randomizer.Randomizer) domain.AllocationResult {
	return allocateRandom(participants, rnd, domain.DefaultFirstTeamName, domain.DefaultSecondTeamName)
}

func allocateRandom(participants []domain.Participant, rnd randomizer.Randomizer, firstName, secondName string) domain.AllocationResult {
	shuffled := Shuffle(participants, rnd)
	mid := (len(shuffled) + 1) / 2

	// Полные срезы ограничены по ёмкости, чтобы append в одной команде не затирал другую.
	return domain.AllocationResult{
		First:  domain.NewTeam(firstName, shuffled[:mid:mid]),
		Second: domain.NewTeam(secondName, shuffled[mid:]),
	}
}
