package audio

import "sync"

// Recorder keeps every effect it receives, handy as a stand-in for real playback.
type Recorder struct {
	mu      sync.Mutex
	effects []Effect
}

func (that *Recorder) Play(cue Cue) {
	that.record(Play(cue))
}

func (that *Recorder) Stop(cue Cue) {
	that.record(Stop(cue))
}

func (that *Recorder) record(effect Effect) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.effects = append(that.effects, effect)
}

func (that *Recorder) Effects() []Effect {
	that.mu.Lock()
	defer that.mu.Unlock()
	return append([]Effect(nil), that.effects...)
}

func (that *Recorder) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.effects = nil
}
