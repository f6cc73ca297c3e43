package playback

import "testing"

func TestRemotePlayerStartAndNow(t *testing.T) {
	p := NewRemotePlayer()

	if p.Now() != nil {
		t.Fatal("Now() on a fresh player should be nil")
	}

	media := Media{Kind: KindText, Text: "hello"}
	if _, err := p.Start(media, []byte("mpeg"), func() {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	now := p.Now()
	if now == nil {
		t.Fatal("Now() = nil after Start")
	}
	if now.Media.Text != "hello" || string(now.Speech) != "mpeg" {
		t.Errorf("Now() = %+v, want recorded media and speech", now)
	}
	if now.Paused {
		t.Error("fresh media should not be paused")
	}
}

func TestRemotePlayerCompleteFiresDoneOnce(t *testing.T) {
	p := NewRemotePlayer()

	fired := 0
	if _, err := p.Start(Media{Kind: KindAudio, Source: "/audios/x.mp3"}, nil, func() { fired++ }); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	p.Complete()
	if fired != 1 {
		t.Fatalf("done fired %d times, want 1", fired)
	}
	if p.Now() != nil {
		t.Error("Now() should be nil after Complete")
	}

	// A second Complete has no callback left to fire.
	p.Complete()
	if fired != 1 {
		t.Errorf("done fired %d times after redundant Complete, want 1", fired)
	}
}

func TestRemotePlayerHandlePauseResume(t *testing.T) {
	p := NewRemotePlayer()

	handle, err := p.Start(Media{Kind: KindAudio, Source: "/audios/x.mp3"}, nil, func() {})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	handle.Pause()
	if now := p.Now(); now == nil || !now.Paused {
		t.Error("media should be paused")
	}

	handle.Resume()
	if now := p.Now(); now == nil || now.Paused {
		t.Error("media should be resumed")
	}
}

func TestRemotePlayerHandleStopDropsDone(t *testing.T) {
	p := NewRemotePlayer()

	fired := false
	handle, err := p.Start(Media{Kind: KindAudio, Source: "/audios/x.mp3"}, nil, func() { fired = true })
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	handle.Stop()
	if p.Now() != nil {
		t.Error("Now() should be nil after Stop")
	}

	// Complete after Stop must not fire the stale callback.
	p.Complete()
	if fired {
		t.Error("done fired after Stop")
	}
}
