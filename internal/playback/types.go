package playback

import "context"

// TagRef is an ephemeral reference to a tag inside a note. It is never a
// copy of the tag value: the live value is read through NoteSource at play
// time.
type TagRef struct {
	NoteID   string `json:"note_id"`
	TagIndex int    `json:"tag_index"`
}

// Kind classifies what a tag's string value refers to.
type Kind int

const (
	// KindText is spoken through the speech synthesis gateway.
	KindText Kind = iota
	// KindImage is not playable and is skipped through immediately.
	KindImage
	// KindAudio is played from its source URL.
	KindAudio
)

// String returns the kind name used in JSON payloads and logs.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	default:
		return "text"
	}
}

// Media is the resolved, playable form of a tag value. Exactly one of the
// variant fields is meaningful for each kind: Text/VoiceID for KindText,
// Source for KindImage and KindAudio.
type Media struct {
	Kind    Kind
	Source  string // Image or audio URL
	Text    string // Text to synthesize
	VoiceID string // Voice selector for synthesis
}

// State is the scheduler's transport state.
type State int

const (
	// StateIdle means no session is active.
	StateIdle State = iota
	// StatePlaying means a tag's media is playing.
	StatePlaying
	// StatePaused means the active media is paused in place.
	StatePaused
	// StateTransitioning means one tag has finished and the next is being resolved.
	StateTransitioning
)

// String returns the state name used in JSON payloads and logs.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateTransitioning:
		return "transitioning"
	default:
		return "idle"
	}
}

// Snapshot is a read-only view of the scheduler's observable state.
type Snapshot struct {
	State   State
	Current *TagRef
	Queue   []TagRef
	Played  []TagRef
}

// NoteSource resolves a tag reference to its live string value.
// Implementations must read the current value, never a cached copy.
type NoteSource interface {
	// TagValue returns the tag's value, or false if the note or index no
	// longer exists.
	TagValue(noteID string, tagIndex int) (string, bool)
}

// Synthesizer converts text to playable audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// Handle controls a single piece of in-flight media.
type Handle interface {
	// Pause suspends playback in place without discarding position.
	Pause()
	// Resume continues playback from the paused position.
	Resume()
	// Stop halts and discards the media. The done callback must not fire
	// after Stop returns.
	Stop()
}

// Player starts media playback. The done callback fires exactly once when
// the media finishes or errors; both count as finished. Start must not
// invoke done synchronously.
type Player interface {
	// Start begins playback of media. For KindText, speech holds the
	// synthesized audio bytes; it is nil for other kinds.
	Start(media Media, speech []byte, done func()) (Handle, error)
}
