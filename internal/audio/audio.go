// Package audio describes the sound cues of the game and the capability that plays them.
// Decoding and output belong to the collaborator behind Player, the game only starts and stops cues.
package audio

import "fmt"

type Cue string

const (
	CueWin        Cue = "win"
	CueLose       Cue = "lose"
	CueBackground Cue = "background"
)

// All lists every cue in the order restart stops them.
var All = []Cue{CueWin, CueLose, CueBackground}

type Player interface {
	Play(cue Cue)
	Stop(cue Cue)
}

type Action string

const (
	ActionPlay Action = "play"
	ActionStop Action = "stop"
)

// Effect is a single play or stop request produced by a state transition.
type Effect struct {
	Action Action `json:"action"`
	Cue    Cue    `json:"cue"`
}

func Play(cue Cue) Effect {
	return Effect{Action: ActionPlay, Cue: cue}
}

func Stop(cue Cue) Effect {
	return Effect{Action: ActionStop, Cue: cue}
}

func (that Effect) String() string {
	return fmt.Sprintf("%s:%s", that.Action, that.Cue)
}

// Apply runs the effects against player in order.
func Apply(player Player, effects []Effect) {
	for _, effect := range effects {
		switch effect.Action {
		case ActionPlay:
			player.Play(effect.Cue)
		case ActionStop:
			player.Stop(effect.Cue)
		}
	}
}
