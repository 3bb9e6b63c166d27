package randomizer

// Randomizer предоставляет абстракцию источника равномерных случайных чисел.
type Randomizer interface {
	// Intn возвращает равномерно распределённое число из [0, n). n должно быть > 0.
	Intn(n int) int
}
