package playback

import "sync"

// NowPlaying describes the media a remote client should currently be
// playing. Speech holds synthesized audio bytes for text tags.
type NowPlaying struct {
	Media  Media
	Speech []byte
	Paused bool
}

// RemotePlayer implements Player for sessions whose actual audio element
// lives elsewhere (the browser). Start records the media as now-playing;
// the owner forwards the client's ended/error signal through Complete,
// which fires the scheduler's done callback.
type RemotePlayer struct {
	mu   sync.Mutex
	now  *NowPlaying
	done func()
}

// NewRemotePlayer creates a RemotePlayer.
func NewRemotePlayer() *RemotePlayer {
	return &RemotePlayer{}
}

// Start records the media as now-playing.
func (p *RemotePlayer) Start(media Media, speech []byte, done func()) (Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = &NowPlaying{Media: media, Speech: speech}
	p.done = done
	return (*remoteHandle)(p), nil
}

// Now returns a copy of the current now-playing media, or nil when idle.
func (p *RemotePlayer) Now() *NowPlaying {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.now == nil {
		return nil
	}
	now := *p.now
	return &now
}

// Complete signals that the client finished (or failed) playing the
// current media. The done callback runs outside the player's lock because
// it re-enters the scheduler.
func (p *RemotePlayer) Complete() {
	p.mu.Lock()
	done := p.done
	p.now = nil
	p.done = nil
	p.mu.Unlock()

	if done != nil {
		done()
	}
}

// remoteHandle is the Handle view of a RemotePlayer.
type remoteHandle RemotePlayer

func (h *remoteHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.now != nil {
		h.now.Paused = true
	}
}

func (h *remoteHandle) Resume() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.now != nil {
		h.now.Paused = false
	}
}

func (h *remoteHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = nil
	h.done = nil
}
