package entity

import "fmt"

const (
	LabelYou      = "you"
	LabelOpponent = "opponent"

	DrawMessage  = "Scratch: Cat's game"
	IdleMessage  = `Press "Start" to begin`
	winnerFormat = "Winner: %s"
	nextFormat   = "Next player: %s"
)

// PlayerLabel - X is the local player, O is shown as the opponent.
func PlayerLabel(mark string) string {
	switch mark {
	case PlayerX:
		return LabelYou
	case PlayerO:
		return LabelOpponent
	default:
		return ""
	}
}

// CalculateStatus - a winner outranks a full board, which outranks the next player.
func CalculateStatus(winner string, board Board, next string) string {
	switch {
	case winner != EmptyCell:
		return fmt.Sprintf(winnerFormat, PlayerLabel(winner))
	case board.IsFull():
		return DrawMessage
	default:
		return fmt.Sprintf(nextFormat, PlayerLabel(next))
	}
}
