package game

import "errors"

const (
	// Cleared marks a board position whose pair has been matched away.
	Cleared = -1
	// NoCell is the pending-cell sentinel meaning no card is face up.
	NoCell = -1
)

var (
	ErrIndexRange = errors.New("cell index out of range")
	ErrSameCell   = errors.New("a cell cannot be matched with itself")
)

// State is one game's decrypted position between two token issuances.
type State struct {
	Deck      []int
	Steps     int
	LastCell  int
	StartTime int64
}

type RevealResult struct {
	// Value is the card at the requested cell, only meaningful in
	// single-flip play.
	Value     int
	Matched   bool
	Completed bool
}

// RevealOne flips a single card. If a card is already face up and holds the
// same value, both are cleared; either way the pending pointer resolves and
// Steps goes up by one. Completion is only detectable on the resolving flip.
func (s *State) RevealOne(index int) (RevealResult, error) {
	if index < 0 || index >= len(s.Deck) {
		return RevealResult{}, ErrIndexRange
	}

	res := RevealResult{Value: s.Deck[index]}
	s.Steps++

	if s.LastCell == NoCell {
		s.LastCell = index
		return res, nil
	}

	if s.LastCell != index && s.Deck[s.LastCell] != Cleared && s.Deck[s.LastCell] == s.Deck[index] {
		s.Deck[s.LastCell] = Cleared
		s.Deck[index] = Cleared
		res.Matched = true
	}
	res.Completed = s.AllCleared()
	s.LastCell = NoCell

	return res, nil
}

// RevealTwo flips two cards in one move and only reports whether they
// matched; the values themselves stay server-side. Steps goes up by two
// whatever the outcome.
func (s *State) RevealTwo(first, second int) (RevealResult, error) {
	if first < 0 || first >= len(s.Deck) || second < 0 || second >= len(s.Deck) {
		return RevealResult{}, ErrIndexRange
	}
	if first == second {
		return RevealResult{}, ErrSameCell
	}

	s.Steps += 2

	var res RevealResult
	if s.Deck[first] != Cleared && s.Deck[first] == s.Deck[second] {
		s.Deck[first] = Cleared
		s.Deck[second] = Cleared
		res.Matched = true
		res.Completed = s.AllCleared()
	}

	return res, nil
}

func (s *State) AllCleared() bool {
	for _, v := range s.Deck {
		if v != Cleared {
			return false
		}
	}
	return true
}
