package board

// Result classifies a terminal game state's outcome (§4.7).
type Result uint8

const (
	Draw Result = iota
	BlackWins
	WhiteWins
)

func (r Result) String() string {
	switch r {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	default:
		return "draw"
	}
}
