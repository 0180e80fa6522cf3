package webpath

const (
	Home = "/"

	NewPlayer     = "/players/new"
	Players       = "/players"
	Player        = "/players/:id"
	DeletePlayers = "/players/delete"

	Compositions = "/compositions"

	RosterCSV    = "/roster.csv"
	ImportRoster = "/roster/import"
)

func Path() map[string]string {
	return map[string]string{
		"Home":          Home,
		"NewPlayer":     NewPlayer,
		"Players":       Players,
		"DeletePlayers": DeletePlayers,
		"Compositions":  Compositions,
		"RosterCSV":     RosterCSV,
		"ImportRoster":  ImportRoster,
	}
}
