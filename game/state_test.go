package game

import (
	"errors"
	"testing"
)

func newState(deck []int) *State {
	return &State{Deck: deck, LastCell: NoCell}
}

func TestRevealOneMatchClearsPair(t *testing.T) {
	s := newState([]int{1, 2, 1, 2})

	res, err := s.RevealOne(0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 1 || res.Matched || res.Completed {
		t.Fatalf("First flip: unexpected result %+v", res)
	}
	if s.LastCell != 0 || s.Steps != 1 {
		t.Fatalf("First flip: lastCell=%d steps=%d", s.LastCell, s.Steps)
	}

	res, err = s.RevealOne(2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 1 || !res.Matched {
		t.Fatalf("Second flip should match, got %+v", res)
	}
	if res.Completed {
		t.Error("Board is not complete yet")
	}
	if s.Deck[0] != Cleared || s.Deck[2] != Cleared {
		t.Errorf("Matched cells should be cleared, deck=%v", s.Deck)
	}
	if s.LastCell != NoCell || s.Steps != 2 {
		t.Errorf("After a match: lastCell=%d steps=%d", s.LastCell, s.Steps)
	}

	// Cleared cells are out of play: flipping one cannot match anything.
	if _, err := s.RevealOne(0); err != nil {
		t.Fatal(err)
	}
	res, err = s.RevealOne(2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched {
		t.Error("Two cleared cells must not count as a new match")
	}
}

func TestRevealOneMismatchKeepsBoard(t *testing.T) {
	s := newState([]int{1, 2, 1, 2})

	if _, err := s.RevealOne(0); err != nil {
		t.Fatal(err)
	}
	res, err := s.RevealOne(1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 2 || res.Matched || res.Completed {
		t.Fatalf("Mismatch: unexpected result %+v", res)
	}
	if s.Steps != 2 {
		t.Errorf("Steps should count failed attempts too, got %d", s.Steps)
	}
	if s.LastCell != NoCell {
		t.Errorf("Pending cell should resolve on a mismatch, got %d", s.LastCell)
	}
	for i, want := range []int{1, 2, 1, 2} {
		if s.Deck[i] != want {
			t.Fatalf("Board changed on a mismatch: %v", s.Deck)
		}
	}
}

func TestRevealOneSameCellTwice(t *testing.T) {
	s := newState([]int{1, 2, 1, 2})

	if _, err := s.RevealOne(3); err != nil {
		t.Fatal(err)
	}
	res, err := s.RevealOne(3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched {
		t.Error("A card must not match itself")
	}
	if s.Deck[3] != 2 {
		t.Errorf("Self-flip cleared a card: %v", s.Deck)
	}
}

func TestRevealOneCompletion(t *testing.T) {
	s := newState([]int{1, 1, 2, 2})

	flips := [][2]int{{0, 1}, {2, 3}}
	var last RevealResult
	for _, pair := range flips {
		if _, err := s.RevealOne(pair[0]); err != nil {
			t.Fatal(err)
		}
		res, err := s.RevealOne(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if !res.Matched {
			t.Fatalf("Pair %v should match", pair)
		}
		last = res
	}
	if !last.Completed {
		t.Error("Clearing the final pair should complete the board")
	}
	if s.Steps != 4 {
		t.Errorf("Expected 4 steps, got %d", s.Steps)
	}
}

func TestRevealTwo(t *testing.T) {
	s := newState([]int{1, 2, 1, 2})

	res, err := s.RevealTwo(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched {
		t.Error("Cells 0 and 1 hold different values")
	}
	if s.Steps != 2 {
		t.Errorf("A two-flip move counts two steps, got %d", s.Steps)
	}

	res, err = s.RevealTwo(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Matched || res.Completed {
		t.Fatalf("Cells 0 and 2 should match without completing: %+v", res)
	}

	res, err = s.RevealTwo(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Matched || !res.Completed {
		t.Fatalf("Final pair should complete the board: %+v", res)
	}
	if s.Steps != 6 {
		t.Errorf("Expected 6 steps, got %d", s.Steps)
	}
}

func TestRevealTwoSameCell(t *testing.T) {
	s := newState([]int{1, 2, 1, 2})
	if _, err := s.RevealTwo(1, 1); !errors.Is(err, ErrSameCell) {
		t.Errorf("Expected ErrSameCell, got %v", err)
	}
}

func TestIndexBounds(t *testing.T) {
	deck, err := SequentialDeck(64)
	if err != nil {
		t.Fatal(err)
	}
	s := newState(deck)

	for _, index := range []int{-1, 64, 65} {
		if _, err := s.RevealOne(index); !errors.Is(err, ErrIndexRange) {
			t.Errorf("RevealOne(%d) on 64 cells: expected ErrIndexRange, got %v", index, err)
		}
		if _, err := s.RevealTwo(0, index); !errors.Is(err, ErrIndexRange) {
			t.Errorf("RevealTwo(0, %d): expected ErrIndexRange, got %v", index, err)
		}
	}
	if _, err := s.RevealOne(63); err != nil {
		t.Errorf("Index 63 is the last valid cell: %v", err)
	}
}

func TestCheckIndexBoundary(t *testing.T) {
	strict := DoubleFlip()
	loose := SingleFlip()

	// deckSize² itself: rejected by the strict bound, historically accepted
	// by the single-flip validation layer.
	if err := strict.CheckIndex(64, 64); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Strict bound must reject index 64 on a 64-cell board, got %v", err)
	}
	if err := loose.CheckIndex(64, 64); err != nil {
		t.Errorf("Inclusive bound accepts index 64 at validation, got %v", err)
	}

	for _, rules := range []Rules{strict, loose} {
		if err := rules.CheckIndex(63, 64); err != nil {
			t.Errorf("Index 63 must pass validation, got %v", err)
		}
		if err := rules.CheckIndex(65, 64); !errors.Is(err, ErrIndexRange) {
			t.Errorf("Index 65 must fail validation, got %v", err)
		}
		if err := rules.CheckIndex(-1, 64); !errors.Is(err, ErrIndexRange) {
			t.Errorf("Negative index must fail validation, got %v", err)
		}
	}
}
