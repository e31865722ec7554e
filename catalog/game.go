package catalog

import "time"

// GameState is the physical condition of a copy in the library.
type GameState string

const (
	StateNew        GameState = "NEW"
	StateGood       GameState = "GOOD"
	StateAcceptable GameState = "ACCEPTABLE"
	StateDamaged    GameState = "DAMAGED"
)

func (s GameState) Valid() bool {
	switch s {
	case StateNew, StateGood, StateAcceptable, StateDamaged:
		return true
	}
	return false
}

type Game struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	MinPlayers      int       `json:"minPlayers"`
	MaxPlayers      int       `json:"maxPlayers"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category"`
	Available       bool      `json:"available"` // false while an active loan exists
	AcquisitionDate time.Time `json:"acquisitionDate"`
	State           GameState `json:"state"`
}
