package editor

import (
	"context"
	"sync"
	"time"

	"pixelkit/raster"
)

// Player cycles through the editor's frames at the configured rate for an
// animation preview. It only reads frames. Call Start again after the frame
// count or FPS changes to pick up the new timing.
type Player struct {
	ed      *Editor
	onFrame func(index int, frame *raster.Buffer)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlayer returns a stopped player calling onFrame for every displayed
// frame.
func NewPlayer(ed *Editor, onFrame func(index int, frame *raster.Buffer)) *Player {
	return &Player{ed: ed, onFrame: onFrame}
}

// Start (re)starts playback from the first frame. It runs until Stop is
// called or ctx is done.
func (p *Player) Start(ctx context.Context) {
	p.Stop()

	fps := p.ed.Config().FPS
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel, p.done = cancel, done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		index := 0
		p.show(index)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				index++
				index = p.show(index)
			}
		}
	}()
}

// show displays frame i modulo the current frame count and returns the
// index actually shown.
func (p *Player) show(i int) int {
	frames := p.ed.Frames()
	i %= len(frames)
	if p.onFrame != nil {
		p.onFrame(i, frames[i])
	}
	return i
}

// Stop halts playback and waits for the playback goroutine to exit. It must
// not be called from the frame callback.
func (p *Player) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether playback is active.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
