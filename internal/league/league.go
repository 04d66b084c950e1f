package league

// Outcome is the result of a match from the first-named team's side.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
	Draw Outcome = "draw"
)

// Team represents a club's record over the tallied matches.
type Team struct {
	Name   string
	Wins   int
	Draws  int
	Losses int
}

// Played returns the number of matches the team took part in.
func (t *Team) Played() int {
	return t.Wins + t.Draws + t.Losses
}

// Points returns 3 per win and 1 per draw.
func (t *Team) Points() int {
	return t.Wins*3 + t.Draws
}

// Match is a single parsed result line.
type Match struct {
	Home, Away string
	Outcome    Outcome
	Line       int
}
