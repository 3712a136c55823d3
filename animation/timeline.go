package animation

import "github.com/automoto/pillbrawl/shared/attackdata"

// ClipSource looks up the clip a cue plays.
type ClipSource interface {
	Clip(cue string) (*attackdata.Clip, bool)
}

// EventHandler receives clip events by name.
type EventHandler func(name string)

// Timeline is a Params that also plays clips. Triggering a cue that has a
// clip restarts playback; Update advances it and emits the clip's events.
// Events are only emitted from Update, never from inside SetTrigger.
type Timeline struct {
	*Params

	clips   ClipSource
	emit    EventHandler
	playing *attackdata.Clip
	elapsed float64
	fired   int
}

func NewTimeline(clips ClipSource, emit EventHandler) *Timeline {
	return &Timeline{Params: NewParams(), clips: clips, emit: emit}
}

// SetEmitter replaces the event handler.
func (t *Timeline) SetEmitter(emit EventHandler) { t.emit = emit }

func (t *Timeline) SetTrigger(name string) {
	t.Params.SetTrigger(name)
	if t.clips == nil {
		return
	}
	if clip, ok := t.clips.Clip(name); ok {
		t.playing = clip
		t.elapsed = 0
		t.fired = 0
	}
}

// Playing returns the cue of the current clip, or "".
func (t *Timeline) Playing() string {
	if t.playing == nil {
		return ""
	}
	return t.playing.Cue
}

// Update advances playback by dt and emits due events in order. A handler
// may trigger a new clip; the remaining events of the old one are dropped.
func (t *Timeline) Update(dt float64) {
	clip := t.playing
	if clip == nil {
		return
	}
	t.elapsed += dt
	for t.playing == clip && t.fired < len(clip.Events) && clip.Events[t.fired].At <= t.elapsed {
		name := clip.Events[t.fired].Name
		t.fired++
		if t.emit != nil {
			t.emit(name)
		}
	}
	if t.playing == clip && t.elapsed >= clip.Length {
		t.playing = nil
	}
}
