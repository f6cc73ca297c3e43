package playback

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Options configures a Scheduler.
type Options struct {
	// AudioPathPrefix is the canonical storage prefix for bare audio
	// filenames (e.g. "/audios/").
	AudioPathPrefix string
	// DefaultVoiceID is the synthesis voice for text tags.
	DefaultVoiceID string
	// HindiVoiceID is used when a text tag contains Devanagari runes.
	HindiVoiceID string
	// OnChange, when set, is invoked after every observable transition.
	// It runs with the scheduler's lock held and must not call back into
	// the scheduler.
	OnChange func(Snapshot)
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Scheduler plays the audio/speech representation of a mutable set of tag
// references in sequence, exposing transport controls. All mutable state is
// private to the scheduler; callers observe it through Snapshot and the
// OnChange callback.
//
// A monotonically increasing session counter fences asynchronous work: it
// is incremented on start, stop and manual navigation, and every async
// resolution compares it before committing its result, so a stale, slow
// synthesis response can never start audio after the user has moved on.
type Scheduler struct {
	notes  NoteSource
	synth  Synthesizer
	player Player
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	queue   []TagRef
	played  map[TagRef]struct{}
	current *TagRef
	state   State
	session uint64
	handle  Handle
	ctx     context.Context // Context captured at Start for async continuations
}

// NewScheduler creates a scheduler over the given ports.
func NewScheduler(notes NoteSource, synth Synthesizer, player Player, opts Options) *Scheduler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		notes:  notes,
		synth:  synth,
		player: player,
		opts:   opts,
		logger: logger,
		played: make(map[TagRef]struct{}),
		state:  StateIdle,
		ctx:    context.Background(),
	}
}

func (s *Scheduler) lock()   { s.mu.Lock() }
func (s *Scheduler) unlock() { s.mu.Unlock() }

// Snapshot returns a copy of the observable state.
func (s *Scheduler) Snapshot() Snapshot {
	s.lock()
	defer s.unlock()
	return s.snapshotLocked()
}

func (s *Scheduler) snapshotLocked() Snapshot {
	snap := Snapshot{
		State: s.state,
		Queue: append([]TagRef(nil), s.queue...),
	}
	if s.current != nil {
		cur := *s.current
		snap.Current = &cur
	}
	snap.Played = make([]TagRef, 0, len(s.played))
	for ref := range s.played {
		snap.Played = append(snap.Played, ref)
	}
	sortRefs(snap.Played)
	return snap
}

func (s *Scheduler) notifyLocked() {
	if s.opts.OnChange != nil {
		s.opts.OnChange(s.snapshotLocked())
	}
}

// SetQueue replaces the selection set. The refs are deduplicated by
// (noteID, tagIndex) and sorted lexicographically by note id, then
// numerically by tag index. If a session is active, the played set is
// pruned to the live queue and the session stops when every remaining
// entry has already been played.
func (s *Scheduler) SetQueue(refs []TagRef) {
	s.lock()
	defer s.unlock()

	seen := make(map[TagRef]struct{}, len(refs))
	queue := make([]TagRef, 0, len(refs))
	for _, ref := range refs {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		queue = append(queue, ref)
	}
	sortRefs(queue)
	s.queue = queue

	s.updateLocked()
	s.notifyLocked()
}

// Update re-checks the session against the live queue. It is a no-op when
// no session is active. Otherwise stale entries are pruned from the played
// set, and the session stops if every remaining queue entry has been
// played; the in-flight tag is left alone and advancement resumes on its
// own.
func (s *Scheduler) Update() {
	s.lock()
	defer s.unlock()
	s.updateLocked()
}

func (s *Scheduler) updateLocked() {
	if s.state == StateIdle {
		return
	}

	// Prune played entries no longer in the queue. Idempotent and
	// order-independent.
	live := make(map[TagRef]struct{}, len(s.queue))
	for _, ref := range s.queue {
		live[ref] = struct{}{}
	}
	for ref := range s.played {
		if _, ok := live[ref]; !ok {
			delete(s.played, ref)
		}
	}

	if len(s.queue) == 0 {
		s.stopLocked()
		return
	}
	remaining := 0
	for _, ref := range s.queue {
		if _, done := s.played[ref]; !done {
			remaining++
		}
	}
	if remaining == 0 {
		s.stopLocked()
	}
}

// Start begins a playback session. It is a no-op when the queue is empty.
// The played set is reset, and the first unplayed tag in ascending queue
// order starts playing.
func (s *Scheduler) Start(ctx context.Context) {
	s.lock()
	defer s.unlock()

	if len(s.queue) == 0 {
		return
	}

	s.session++
	s.ctx = ctx
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.played = make(map[TagRef]struct{})
	s.state = StateTransitioning
	s.runLocked(s.session, nil)
}

// Pause suspends the active media in place. Valid only while playing;
// otherwise a no-op.
func (s *Scheduler) Pause() {
	s.lock()
	defer s.unlock()

	if s.state != StatePlaying || s.handle == nil {
		return
	}
	s.handle.Pause()
	s.state = StatePaused
	s.notifyLocked()
}

// Resume continues the active media from its paused position. Valid only
// while paused; otherwise a no-op.
func (s *Scheduler) Resume() {
	s.lock()
	defer s.unlock()

	if s.state != StatePaused || s.handle == nil {
		return
	}
	s.handle.Resume()
	s.state = StatePlaying
	s.notifyLocked()
}

// Stop halts and discards the active media, clears the played set and the
// current tag, and returns to Idle. Idempotent and valid from any state.
func (s *Scheduler) Stop() {
	s.lock()
	defer s.unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	s.session++
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.played = make(map[TagRef]struct{})
	s.current = nil
	s.state = StateIdle
	s.notifyLocked()
}

// Next jumps playback to the tag after the current one in the live queue.
// The interrupted tag is not marked played. A no-op at the last element.
// If the current tag has left the queue, playback falls back to the first
// element. Playback is forced on, even out of pause.
func (s *Scheduler) Next() {
	s.navigate(1)
}

// Previous jumps playback to the tag before the current one in the live
// queue. The interrupted tag is not marked played. A no-op at the first
// element. If the current tag has left the queue, playback falls back to
// the last element. Playback is forced on, even out of pause.
func (s *Scheduler) Previous() {
	s.navigate(-1)
}

func (s *Scheduler) navigate(direction int) {
	s.lock()
	defer s.unlock()

	if len(s.queue) == 0 {
		return
	}

	target := -1
	idx := s.currentIndexLocked()
	switch {
	case idx >= 0:
		neighbor := idx + direction
		if neighbor < 0 || neighbor >= len(s.queue) {
			return // Boundary: no-op
		}
		target = neighbor
	case direction > 0:
		target = 0
	default:
		target = len(s.queue) - 1
	}

	// Invalidate any in-flight resolution and discard active media without
	// marking the interrupted tag as played.
	s.session++
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}

	ref := s.queue[target]
	s.state = StateTransitioning
	s.runLocked(s.session, &ref)
}

// currentIndexLocked returns the current tag's index in the live queue, or
// -1 when there is no current tag or it has been removed from the queue.
func (s *Scheduler) currentIndexLocked() int {
	if s.current == nil {
		return -1
	}
	for i, ref := range s.queue {
		if ref == *s.current {
			return i
		}
	}
	return -1
}

// nextUnplayedLocked returns the first queue entry not in the played set.
func (s *Scheduler) nextUnplayedLocked() (TagRef, bool) {
	for _, ref := range s.queue {
		if _, done := s.played[ref]; !done {
			return ref, true
		}
	}
	return TagRef{}, false
}

// runLocked drives the session forward: it plays forced (if non-nil),
// otherwise the next unplayed tag, skipping straight through unplayable or
// failed tags until media actually starts or the queue is exhausted.
func (s *Scheduler) runLocked(session uint64, forced *TagRef) {
	for {
		if session != s.session {
			return
		}

		var ref TagRef
		if forced != nil {
			ref = *forced
			forced = nil
		} else {
			next, ok := s.nextUnplayedLocked()
			if !ok {
				// Queue exhausted: back to Idle, restartable.
				s.stopLocked()
				return
			}
			ref = next
		}

		s.current = &TagRef{NoteID: ref.NoteID, TagIndex: ref.TagIndex}

		value, ok := s.notes.TagValue(ref.NoteID, ref.TagIndex)
		if !ok {
			// The note or tag disappeared; count the attempt and move on.
			s.played[ref] = struct{}{}
			continue
		}

		media := Classify(value, s.opts.AudioPathPrefix)
		switch media.Kind {
		case KindImage:
			// Images are skip-through: finished with no audio.
			s.played[ref] = struct{}{}
			continue

		case KindAudio:
			handle, err := s.player.Start(media, nil, s.doneFunc(ref, session))
			if err != nil {
				s.logger.Warn("audio playback failed, skipping tag", "note_id", ref.NoteID, "tag_index", ref.TagIndex, "error", err)
				s.played[ref] = struct{}{}
				continue
			}
			s.handle = handle
			s.state = StatePlaying
			s.notifyLocked()
			return

		case KindText:
			media.VoiceID = s.opts.DefaultVoiceID
			if ContainsDevanagari(media.Text) {
				media.VoiceID = s.opts.HindiVoiceID
			}
			s.state = StateTransitioning
			s.notifyLocked()
			go s.resolveText(s.ctx, media, ref, session)
			return
		}
	}
}

// resolveText performs the asynchronous synthesis round trip for a text
// tag. The session counter is re-checked after the await: a stale result
// never starts audio.
func (s *Scheduler) resolveText(ctx context.Context, media Media, ref TagRef, session uint64) {
	speech, err := s.synth.Synthesize(ctx, media.Text, media.VoiceID)

	s.lock()
	defer s.unlock()

	if session != s.session {
		return // Stale resolution: discard
	}

	if err != nil {
		// Fail open: a bad tag never halts the session.
		s.logger.Warn("speech synthesis failed, skipping tag", "note_id", ref.NoteID, "tag_index", ref.TagIndex, "error", err)
		s.played[ref] = struct{}{}
		s.runLocked(session, nil)
		return
	}

	handle, err := s.player.Start(media, speech, s.doneFunc(ref, session))
	if err != nil {
		s.logger.Warn("speech playback failed, skipping tag", "note_id", ref.NoteID, "tag_index", ref.TagIndex, "error", err)
		s.played[ref] = struct{}{}
		s.runLocked(session, nil)
		return
	}
	s.handle = handle
	s.state = StatePlaying
	s.notifyLocked()
}

// doneFunc builds the completion callback for one tag's media. Completion
// and error both mark the tag played and advance the session.
func (s *Scheduler) doneFunc(ref TagRef, session uint64) func() {
	return func() {
		s.lock()
		defer s.unlock()

		if session != s.session {
			return
		}
		s.handle = nil
		s.played[ref] = struct{}{}
		s.state = StateTransitioning
		s.runLocked(session, nil)
	}
}

// sortRefs orders refs lexicographically by note id, then numerically by
// tag index.
func sortRefs(refs []TagRef) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].NoteID != refs[j].NoteID {
			return refs[i].NoteID < refs[j].NoteID
		}
		return refs[i].TagIndex < refs[j].TagIndex
	})
}
