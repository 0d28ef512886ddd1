// Package tictactoe holds the pure transitions of a single board.
// Every function takes a state and returns the next one together with the audio effects to apply,
// so callers decide when and where effects actually happen.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/audio"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Start - marks the game as started. Starting twice changes nothing.
func Start(state entity.State) (entity.State, bool) {
	if state.Started {
		return state, false
	}

	state.Started = true
	state.Countdown = 0

	return state, true
}

// SelectCell - places the next mark on cell.
// The move is ignored when the cell is taken, a winner exists or the game has not started.
func SelectCell(state entity.State, cell int) (entity.State, []audio.Effect, bool) {
	if !canSelect(state, cell) {
		return state, nil, false
	}

	state.Board[cell] = state.NextMark()

	winner := entity.CalculateWinner(state.Board)
	if winner == entity.EmptyCell {
		return state, nil, true
	}

	return state, winEffects(winner), true
}

// Restart - clears the board and stops every cue whether it was playing or not.
func Restart(_ entity.State) (entity.State, []audio.Effect) {
	return entity.NewState(), stopAll()
}

// Tick - shows one countdown value.
func Tick(state entity.State, value int) entity.State {
	if value < 0 {
		value = 0
	}

	state.Countdown = value

	return state
}

// FinishCountdown - hides the countdown and starts the background music.
func FinishCountdown(state entity.State) (entity.State, []audio.Effect) {
	state.Countdown = 0

	return state, []audio.Effect{audio.Play(audio.CueBackground)}
}

// Teardown - effects of removing the board from the page: nothing may keep playing.
func Teardown() []audio.Effect {
	return stopAll()
}

func stopAll() []audio.Effect {
	effects := make([]audio.Effect, 0, len(audio.All))
	for _, cue := range audio.All {
		effects = append(effects, audio.Stop(cue))
	}

	return effects
}

func canSelect(state entity.State, cell int) bool {
	switch {
	case !entity.IsValidCell(cell):
		return false
	case !state.Started:
		return false
	case state.Board.IsOccupied(cell):
		return false
	case state.Winner() != entity.EmptyCell:
		return false
	default:
		return true
	}
}

// winEffects - X is the local player, so an X line is a win and an O line a loss.
// Background music stops on every winning move.
func winEffects(winner string) []audio.Effect {
	cue := audio.CueLose
	if winner == entity.PlayerX {
		cue = audio.CueWin
	}

	return []audio.Effect{audio.Play(cue), audio.Stop(audio.CueBackground)}
}
