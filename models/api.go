package models

type AuthRequest struct {
	InitData string `json:"initData"`
	Hash     string `json:"hash"`
}

type StartGameRequest struct {
	DeckSize int `json:"deckSize"`
}

// StartGameResponse carries one opaque image reference per board cell in
// double-flip mode; single-flip mode replies with success only.
type StartGameResponse struct {
	Paths   []string `json:"paths,omitempty"`
	Success bool     `json:"success"`
}

type OpenCardRequest struct {
	Index int `json:"index"`
}

type OpenCardResponse struct {
	Image   int  `json:"image"`
	Success bool `json:"success"`
}

type RevealPairRequest struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// RevealPairResponse only reports whether the pair matched; card values never
// leave the server in double-flip mode.
type RevealPairResponse struct {
	Success bool `json:"success"`
}
