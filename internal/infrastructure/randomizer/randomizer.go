package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

type randomizerImpl struct {
	mu  sync.Mutex // Защищает доступ к генератору случайных чисел
	rnd *rand.Rand
}

// New создаёт потокобезопасный randomizer, инициализированный текущим временем.
func New() Randomizer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded создаёт randomizer с фиксированным seed, последовательность чисел воспроизводима.
func NewSeeded(seed int64) Randomizer {
	return &randomizerImpl{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

// Intn возвращает случайное число из [0, n).
func (r *randomizerImpl) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
