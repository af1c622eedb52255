package models

import "time"

// Score is one leaderboard row: a player's best completion for a deck size.
type Score struct {
	ID    int64       `json:"id"`
	Time  int         `json:"time"`
	Steps int         `json:"steps"`
	Date  time.Time   `json:"date"`
	Trys  int         `json:"trys"`
	User  ScorePlayer `json:"user"`
}

type ScorePlayer struct {
	Image string `json:"image"`
	Name  string `json:"name"`
}
