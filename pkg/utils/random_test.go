package utils

import "testing"

func TestRandRange(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 6, 10)
		if v < 6 || v > 10 {
			t.Fatalf("RandRange(6,10) = %d", v)
		}
	}
	if RandRange(rng, 3, 3) != 3 {
		t.Error("degenerate range should return min")
	}
}

func TestWeightedChoice(t *testing.T) {
	rng := NewRNG(7)

	t.Run("zero weight never chosen", func(t *testing.T) {
		choices := []Weighted[string]{
			{Weight: 80, Item: "orc"},
			{Weight: 0, Item: "troll"},
		}
		for i := 0; i < 500; i++ {
			got, ok := WeightedChoice(rng, choices)
			if !ok || got != "orc" {
				t.Fatalf("WeightedChoice() = %q, %v", got, ok)
			}
		}
	})

	t.Run("all zero", func(t *testing.T) {
		_, ok := WeightedChoice(rng, []Weighted[int]{{Weight: 0, Item: 1}})
		if ok {
			t.Error("expected no choice")
		}
	})

	t.Run("roughly proportional", func(t *testing.T) {
		choices := []Weighted[int]{{Weight: 1, Item: 0}, {Weight: 3, Item: 1}}
		counts := [2]int{}
		for i := 0; i < 4000; i++ {
			v, _ := WeightedChoice(rng, choices)
			counts[v]++
		}
		if counts[1] < 2500 || counts[1] > 3500 {
			t.Errorf("weight 3 of 4 picked %d/4000 times", counts[1])
		}
	})
}

func TestNewRNG_Deterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 10; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}
