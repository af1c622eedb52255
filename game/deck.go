package game

import (
	"fmt"
	"math/rand"
)

// MaxUniquePairs bounds how many distinct card values a deck may hold; there
// is only that much card art.
const MaxUniquePairs = 32

// randomValueRange is the value space the random pool draws from.
const randomValueRange = 1024

// SequentialDeck builds a shuffled board of cells cards whose pair values are
// 1..cells/2.
func SequentialDeck(cells int) ([]int, error) {
	return newDeck(cells, func(pairs int) []int {
		values := make([]int, pairs)
		for i := range values {
			values[i] = i + 1
		}
		return values
	})
}

// RandomDeck builds a shuffled board whose pair values are distinct random
// integers in [1, randomValueRange].
func RandomDeck(cells int) ([]int, error) {
	return newDeck(cells, func(pairs int) []int {
		values := make([]int, 0, pairs)
		seen := make(map[int]bool, pairs)
		for len(values) < pairs {
			v := rand.Intn(randomValueRange) + 1
			if seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		return values
	})
}

func newDeck(cells int, pool func(pairs int) []int) ([]int, error) {
	if cells%2 != 0 {
		return nil, fmt.Errorf("deck needs an even cell count, got %d", cells)
	}
	pairs := cells / 2
	if pairs > MaxUniquePairs {
		return nil, fmt.Errorf("deck of %d cells needs %d unique values, maximum is %d", cells, pairs, MaxUniquePairs)
	}

	values := pool(pairs)
	deck := make([]int, 0, cells)
	deck = append(deck, values...)
	deck = append(deck, values...)

	// Fisher-Yates, backward pass.
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	return deck, nil
}
