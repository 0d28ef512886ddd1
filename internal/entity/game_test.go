package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWinner(t *testing.T) {
	t.Run("Returns the mark for every winning line", func(t *testing.T) {
		for _, mark := range []string{PlayerX, PlayerO} {
			for _, combo := range WinCombos {
				// Given: a board where only one line is filled with the same mark
				var board Board
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: calculating the winner
				winner := CalculateWinner(board)

				// Then: the owner of the line wins
				assert.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Returns EmptyCell for a mixed line", func(t *testing.T) {
		// Given: a top row with two different marks
		board := Board{PlayerX, PlayerX, PlayerO}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: nobody wins
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns EmptyCell for an empty board", func(t *testing.T) {
		assert.Equal(t, EmptyCell, CalculateWinner(Board{}))
	})

	t.Run("Returns EmptyCell for a full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: nobody wins
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Left column wins for X", func(t *testing.T) {
		// Given: X on 0, 3, 6 and O on 1, 4
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// Then: X wins
		require.Equal(t, PlayerX, CalculateWinner(board))
	})

	t.Run("Agrees with a row, column and diagonal scan on every board", func(t *testing.T) {
		marks := [3]string{EmptyCell, PlayerX, PlayerO}

		total := 1
		for range BoardSize {
			total *= len(marks)
		}

		for code := range total {
			// Given: the board encoded by code in base 3
			var board Board
			for i, rest := 0, code; i < BoardSize; i, rest = i+1, rest/len(marks) {
				board[i] = marks[rest%len(marks)]
			}

			// When: calculating the winner
			winner := CalculateWinner(board)

			// Then: it is empty exactly when no line is complete, otherwise it owns a line
			owners := lineOwners(board)
			if len(owners) == 0 {
				if !assert.Equal(t, EmptyCell, winner, "board %v", board) {
					return
				}

				continue
			}

			if !assert.True(t, owners[winner], "board %v: winner %q owns no line", board, winner) {
				return
			}
		}
	})
}

// lineOwners scans rows, columns and both diagonals by coordinates and returns the marks
// that fill at least one of them.
func lineOwners(board Board) map[string]bool {
	owners := map[string]bool{}
	at := func(row, col int) string { return board[row*3+col] }

	check := func(a, b, c string) {
		if a != EmptyCell && a == b && b == c {
			owners[a] = true
		}
	}

	for i := range 3 {
		check(at(i, 0), at(i, 1), at(i, 2))
		check(at(0, i), at(1, i), at(2, i))
	}

	check(at(0, 0), at(1, 1), at(2, 2))
	check(at(0, 2), at(1, 1), at(2, 0))

	return owners
}

func TestCalculateNextMark(t *testing.T) {
	t.Run("X moves on an empty board", func(t *testing.T) {
		assert.Equal(t, PlayerX, CalculateNextMark(Board{}))
	})

	t.Run("O moves after one mark", func(t *testing.T) {
		assert.Equal(t, PlayerO, CalculateNextMark(Board{PlayerX}))
	})

	t.Run("X moves after two marks", func(t *testing.T) {
		assert.Equal(t, PlayerX, CalculateNextMark(Board{PlayerX, PlayerO}))
	})
}

func TestState_Phase(t *testing.T) {
	t.Run("New state is not started", func(t *testing.T) {
		state := NewState()

		assert.Equal(t, PhaseNotStarted, state.Phase())
		assert.False(t, state.IsTerminal())
	})

	t.Run("Started state with free cells is in progress", func(t *testing.T) {
		state := State{Started: true, Board: Board{PlayerX}}

		assert.Equal(t, PhaseInProgress, state.Phase())
	})

	t.Run("Started state with a line is won", func(t *testing.T) {
		state := State{Started: true, Board: Board{PlayerO, PlayerO, PlayerO}}

		assert.Equal(t, PhaseWon, state.Phase())
		assert.True(t, state.IsTerminal())
	})

	t.Run("Started state with a full board and no line is drawn", func(t *testing.T) {
		state := State{Started: true, Board: Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}}

		assert.Equal(t, PhaseDrawn, state.Phase())
		assert.True(t, state.IsTerminal())
	})
}

func TestIsValidCell(t *testing.T) {
	assert.True(t, IsValidCell(0))
	assert.True(t, IsValidCell(8))
	assert.False(t, IsValidCell(-1))
	assert.False(t, IsValidCell(9))
}
