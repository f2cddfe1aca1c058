//go:build !linux

package scan

import "fmt"

// OpenCamera reports the missing capability; manual entry remains the
// validation path on platforms without V4L2.
func OpenCamera(device string) (FrameSource, error) {
	return nil, fmt.Errorf("%w: no camera support on this platform", ErrCameraUnavailable)
}
