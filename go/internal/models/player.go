package models

// PlayerID identifies a player within the league dataset.
type PlayerID string

// Player is a registered player. TeamID references the player's current club.
type Player struct {
	ID          PlayerID `json:"id"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Number      int      `json:"number"`
	Age         int      `json:"age"`
	Nationality string   `json:"nationality"`
	Photo       string   `json:"photo"`
	TeamID      TeamID   `json:"teamId"`
	Goals       int      `json:"goals"`
	Assists     int      `json:"assists"`
	Matches     int      `json:"matches"`
}
