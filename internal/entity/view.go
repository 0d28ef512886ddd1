package entity

import "strconv"

const (
	ColorX     = "#FF6969"
	ColorO     = "#87C4FF"
	ColorEmpty = "gray"

	ButtonStart   = "Start"
	ButtonRestart = "Restart"
)

type Cell struct {
	Index int    `json:"index"`
	Mark  string `json:"mark"`
	Color string `json:"color"`
}

// View is the render model of one board: what the page shows, nothing more.
type View struct {
	SessionID string `json:"session_id,omitempty"`
	Cells     []Cell `json:"cells"`
	Banner    string `json:"banner"`
	Button    string `json:"button"`
	Started   bool   `json:"started"`
	Countdown int    `json:"countdown"`
	Phase     string `json:"phase"`
	Winner    string `json:"winner,omitempty"`
	NextMark  string `json:"next_mark,omitempty"`
}

func Render(sessionID string, state State) *View {
	winner := state.Winner()
	next := state.NextMark()

	view := &View{
		SessionID: sessionID,
		Cells:     make([]Cell, 0, BoardSize),
		Banner:    banner(state, winner, next),
		Button:    ButtonStart,
		Started:   state.Started,
		Countdown: state.Countdown,
		Phase:     state.Phase(),
		Winner:    winner,
	}

	if state.Started {
		view.Button = ButtonRestart
	}

	if winner == EmptyCell && !state.Board.IsFull() {
		view.NextMark = next
	}

	for i, mark := range state.Board {
		view.Cells = append(view.Cells, Cell{Index: i, Mark: mark, Color: cellColor(mark)})
	}

	return view
}

// banner - a running countdown takes the place of the status line.
func banner(state State, winner, next string) string {
	switch {
	case state.Countdown > 0:
		return strconv.Itoa(state.Countdown)
	case !state.Started:
		return IdleMessage
	default:
		return CalculateStatus(winner, state.Board, next)
	}
}

func cellColor(mark string) string {
	switch mark {
	case PlayerX:
		return ColorX
	case PlayerO:
		return ColorO
	default:
		return ColorEmpty
	}
}
