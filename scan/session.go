package scan

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrCameraUnavailable covers permission denial, a missing device and
	// platforms without camera support. The caller reports it to the user;
	// manual entry stays available.
	ErrCameraUnavailable = errors.New("camera unavailable")

	// ErrScanAborted means the stream never produced usable frames, e.g. a
	// silently degraded permission delivering empty buffers.
	ErrScanAborted = errors.New("scan aborted: camera produced no usable frames")

	// ErrScanActive is returned by Start while a session is running: the
	// running session is stopped instead of a second one starting.
	ErrScanActive = errors.New("scan session was active and has been stopped")
)

// DefaultMaxBadFrames bounds consecutive dimensionless frames before the
// session gives up. Undecodable but well-formed frames do not count; a
// code simply not being in view is normal.
const DefaultMaxBadFrames = 300

// FrameSource delivers frames at the camera's own cadence. The channel
// closes when the source is exhausted or released. Close must be safe to
// call more than once and from any goroutine.
type FrameSource interface {
	Frames() <-chan image.Image
	Close() error
}

// Session runs at most one scan at a time.
type Session struct {
	MaxBadFrames int

	mu     sync.Mutex
	cancel context.CancelFunc
	log    zerolog.Logger
}

func NewSession(log zerolog.Logger) *Session {
	return &Session{MaxBadFrames: DefaultMaxBadFrames, log: log}
}

// Start consumes frames until the first successful decode, a cancel, or
// the bad-frame guard trips. The source is released before Start returns,
// whatever the exit path. Calling Start while a session is active stops
// the active one and returns ErrScanActive without starting another.
func (s *Session) Start(ctx context.Context, src FrameSource, dec Decoder) (string, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.mu.Unlock()
		_ = src.Close()
		return "", ErrScanActive
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		_ = src.Close()
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		cancel()
	}()

	s.log.Debug().Str("decoder", dec.Name()).Msg("scan session started")

	bad := 0
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case img, ok := <-src.Frames():
			if !ok {
				return "", ErrCameraUnavailable
			}
			// teardown may have raced the frame delivery
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if img == nil || img.Bounds().Empty() {
				bad++
				if bad >= s.MaxBadFrames {
					return "", ErrScanAborted
				}
				continue
			}
			bad = 0
			code, err := dec.Decode(img)
			if err != nil || code == "" {
				continue
			}
			s.log.Debug().Msg("scan session decoded a payload")
			return strings.TrimSpace(code), nil
		}
	}
}

// Stop cancels the running session, if any. Safe to call repeatedly and
// from any trigger point: user cancel, successful decode, teardown.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Active reports whether a session currently holds the camera.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
