package allocator

import "team-generator/internal/infrastructure/randomizer"

// Shuffle возвращает новую перестановку items, используя алгоритм Fisher-Yates.
// Исходный срез не изменяется. Для n элементов расходуется ровно n-1 случайное число.
func Shuffle[T any](items []T, rnd randomizer.Randomizer) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i >= 1; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
