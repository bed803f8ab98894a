package utils

import "math/rand/v2"

// NewRNG создает детерминированный генератор по зерну.
// Одно и то же зерно дает одну и ту же партию (реплеи опираются на это).
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// RandRange возвращает случайное число из [min, max] включительно.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.IntN(max-min+1) + min
}

// CoinFlip - честная монетка.
func CoinFlip(rng *rand.Rand) bool {
	return rng.IntN(2) == 0
}

// Weighted - вариант выбора с весом. Вес <= 0 означает "никогда".
type Weighted[T any] struct {
	Weight int
	Item   T
}

// WeightedChoice выбирает вариант пропорционально весу.
// Возвращает false, если ни у одного варианта нет положительного веса.
func WeightedChoice[T any](rng *rand.Rand, choices []Weighted[T]) (T, bool) {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}

	var zero T
	if total == 0 {
		return zero, false
	}

	roll := rng.IntN(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if roll < c.Weight {
			return c.Item, true
		}
		roll -= c.Weight
	}
	return zero, false
}
