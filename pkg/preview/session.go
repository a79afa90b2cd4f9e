package preview

import (
	"image"
	"sync"
	"time"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/pixel"
)

// DefaultDelay is the debounce window applied when Config.Delay is zero.
const DefaultDelay = 120 * time.Millisecond

// Config wires a Session to its caller. All callbacks are invoked from the
// scheduler's own goroutine, never from the goroutine calling Update.
type Config struct {
	// Delay is the debounce window. Parameter changes arriving within the
	// window replace the pending recompute instead of queuing a new one.
	Delay time.Duration
	// MaxEdge caps the preview buffer's longest side. Larger sources are
	// downscaled once at load; 0 disables downscaling.
	MaxEdge int
	// OnPreview receives each freshly rendered preview. The image belongs
	// to the receiver.
	OnPreview func(*image.NRGBA)
	// OnBusy signals the start and end of a recompute for a lightweight
	// progress indicator.
	OnBusy func(bool)
	// Logger defaults to a no-op logger when nil.
	Logger *zerolog.Logger
}

// Session owns the pristine pixel buffer for one loaded image and schedules
// debounced preview recomputes against it. Every recompute starts from a
// clone of the pristine pixels, so repeated adjustments never compound
// rounding error.
type Session struct {
	cfg Config
	log zerolog.Logger

	mu       sync.Mutex
	pristine *image.NRGBA
	preview  *image.NRGBA
	pending  RenderFunc
	timer    *time.Timer
	gen      uint64
	closed   bool
}

func NewSession(cfg Config) *Session {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Session{cfg: cfg, log: log}
}

// Load replaces the session's source image, cancelling any pending
// recompute. The session takes ownership of img; callers must not mutate it
// afterwards. The initial preview is the unmodified source.
func (s *Session) Load(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if s.cfg.MaxEdge > 0 && (b.Dx() > s.cfg.MaxEdge || b.Dy() > s.cfg.MaxEdge) {
		scaled := resize.Thumbnail(uint(s.cfg.MaxEdge), uint(s.cfg.MaxEdge), img, resize.Lanczos3)
		img = pixel.ToNRGBA(scaled)
		s.log.Debug().
			Int("sourceWidth", b.Dx()).Int("sourceHeight", b.Dy()).
			Int("maxEdge", s.cfg.MaxEdge).
			Msg("downscaled preview source")
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.stopTimerLocked()
	s.pending = nil
	s.pristine = img
	s.preview = pixel.Clone(img)
	out := pixel.Clone(img)
	cb := s.cfg.OnPreview
	s.mu.Unlock()

	if cb != nil {
		cb(out)
	}
}

// Update schedules a recompute with the given render pass after the
// debounce window. A newer Update before the window elapses replaces the
// pending pass; bursts collapse into a single recompute of the latest
// snapshot.
func (s *Session) Update(render RenderFunc) {
	if render == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.pristine == nil {
		s.log.Warn().Msg("parameter update before an image was loaded")
		return
	}
	s.gen++
	gen := s.gen
	s.pending = render
	s.stopTimerLocked()
	s.timer = time.AfterFunc(s.cfg.Delay, func() { s.fire(gen) })
}

// Flush runs any pending recompute immediately instead of waiting out the
// debounce window.
func (s *Session) Flush() {
	s.mu.Lock()
	gen := s.gen
	s.stopTimerLocked()
	s.mu.Unlock()
	s.fire(gen)
}

// Preview returns a copy of the most recent preview, or nil before any
// image is loaded.
func (s *Session) Preview() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pixel.Clone(s.preview)
}

// Close cancels any pending recompute and stops all future callbacks.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimerLocked()
	s.pending = nil
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire runs the pending render pass if gen is still the latest scheduled
// generation. It executes on the timer goroutine.
func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen || s.pending == nil || s.pristine == nil {
		s.mu.Unlock()
		return
	}
	render := s.pending
	s.pending = nil
	src := pixel.Clone(s.pristine)
	onBusy := s.cfg.OnBusy
	s.mu.Unlock()

	if onBusy != nil {
		onBusy(true)
		defer onBusy(false)
	}
	ok := s.safeRender(render, src)

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	if ok {
		s.preview = src
	} else {
		// a failed render degrades to showing the original
		s.preview = pixel.Clone(s.pristine)
	}
	out := pixel.Clone(s.preview)
	cb := s.cfg.OnPreview
	s.mu.Unlock()

	if cb != nil {
		cb(out)
	}
}

func (s *Session) safeRender(render RenderFunc, img *image.NRGBA) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("preview render failed, keeping original")
			ok = false
		}
	}()
	render(img)
	return true
}
