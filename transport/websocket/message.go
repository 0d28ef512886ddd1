package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solo/internal/audio"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	ActionStart   = "game:start"
	ActionSelect  = "game:select"
	ActionRestart = "game:restart"

	ActionState     = "game:state"
	ActionAudioPlay = "audio:play"
	ActionAudioStop = "audio:stop"
	ActionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload is sent by the page.
type RequestPayload struct {
	Cell *int `json:"cell,omitempty"`
}

// ResponsePayload is sent to the page.
type ResponsePayload struct {
	Game  *entity.View `json:"game,omitempty"`
	Cue   audio.Cue    `json:"cue,omitempty"`
	Error string       `json:"error,omitempty"`
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{
		Action:  action,
		Payload: payloadJSON,
	})
}
