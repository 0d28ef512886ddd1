package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""

	BoardSize = 9
)

const (
	PhaseNotStarted = "not_started"
	PhaseInProgress = "in_progress"
	PhaseWon        = "won"
	PhaseDrawn      = "drawn"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]string

// State is everything a mounted board holds between events.
// Turn and winner are never stored, they are derived from Board.
type State struct {
	Board     Board `json:"board"`
	Started   bool  `json:"started"`
	Countdown int   `json:"countdown"`
}

func NewState() State {
	return State{}
}

// CalculateWinner - returns the mark that owns a full line, or EmptyCell.
func CalculateWinner(board Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// CalculateNextMark - X moves on an even number of filled cells, O on odd.
func CalculateNextMark(board Board) string {
	if board.Filled()%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != EmptyCell {
			filled++
		}
	}
	return filled
}

func (that Board) IsFull() bool {
	return that.Filled() == len(that)
}

func (that Board) IsOccupied(cell int) bool {
	return that[cell] != EmptyCell
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that State) Winner() string {
	return CalculateWinner(that.Board)
}

func (that State) NextMark() string {
	return CalculateNextMark(that.Board)
}

func (that State) Phase() string {
	switch {
	case !that.Started:
		return PhaseNotStarted
	case that.Winner() != EmptyCell:
		return PhaseWon
	case that.Board.IsFull():
		return PhaseDrawn
	default:
		return PhaseInProgress
	}
}

func (that State) IsTerminal() bool {
	phase := that.Phase()
	return phase == PhaseWon || phase == PhaseDrawn
}
