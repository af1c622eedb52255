package game

// DeckSizes are the board side lengths a client may request.
var DeckSizes = []int{4, 6, 8}

func ValidDeckSize(size int) bool {
	for _, s := range DeckSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Rules is the policy split between the two reveal protocols. Only the flip
// arity, the value pool and the request-validation bound differ; the state
// machine itself is shared.
type Rules struct {
	// Flips is how many cells one reveal request names, 1 or 2.
	Flips int
	// InclusiveBound accepts index == cells at the request-validation layer.
	// The single-flip protocol historically validated with <= rather than <;
	// State still refuses the out-of-range cell, so the looser check only
	// changes which error the caller sees. Kept switchable until clients
	// are confirmed to never send it.
	InclusiveBound bool
	// Generate produces a fresh shuffled board for the given cell count.
	Generate func(cells int) ([]int, error)
}

// SingleFlip reveals one card per request and answers with its value.
func SingleFlip() Rules {
	return Rules{Flips: 1, InclusiveBound: true, Generate: SequentialDeck}
}

// DoubleFlip reveals two cards per request and answers only with the match
// outcome, so values never reach the client.
func DoubleFlip() Rules {
	return Rules{Flips: 2, Generate: RandomDeck}
}

// CheckIndex validates a requested cell index against the board size. A
// failure here is a malformed request, not a game-state error.
func (r Rules) CheckIndex(index, cells int) error {
	limit := cells
	if r.InclusiveBound {
		limit = cells + 1
	}
	if index < 0 || index >= limit {
		return ErrIndexRange
	}
	return nil
}
