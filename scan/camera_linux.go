//go:build linux

package scan

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"sync"

	"github.com/blackjack/webcam"
)

// V4L2 fourcc codes for the two frame formats we can consume.
const (
	pixFmtMJPEG = webcam.PixelFormat(0x47504A4D) // 'MJPG'
	pixFmtYUYV  = webcam.PixelFormat(0x56595559) // 'YUYV'
)

type cameraSource struct {
	cam       *webcam.Webcam
	format    webcam.PixelFormat
	width     int
	height    int
	frames    chan image.Image
	done      chan struct{}
	closeOnce sync.Once
}

// OpenCamera acquires the device and starts streaming. Any failure to
// acquire is wrapped in ErrCameraUnavailable so callers can message the
// user and keep manual entry open.
func OpenCamera(device string) (FrameSource, error) {
	if device == "" {
		device = "/dev/video0"
	}

	cam, err := webcam.Open(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCameraUnavailable, device, err)
	}

	format, err := pickFormat(cam)
	if err != nil {
		cam.Close()
		return nil, err
	}
	f, w, h, err := cam.SetImageFormat(format, 640, 480)
	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("%w: set format: %v", ErrCameraUnavailable, err)
	}
	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, fmt.Errorf("%w: start streaming: %v", ErrCameraUnavailable, err)
	}

	src := &cameraSource{
		cam:    cam,
		format: f,
		width:  int(w),
		height: int(h),
		frames: make(chan image.Image),
		done:   make(chan struct{}),
	}
	go src.readLoop()
	return src, nil
}

func pickFormat(cam *webcam.Webcam) (webcam.PixelFormat, error) {
	supported := cam.GetSupportedFormats()
	if _, ok := supported[pixFmtMJPEG]; ok {
		return pixFmtMJPEG, nil
	}
	if _, ok := supported[pixFmtYUYV]; ok {
		return pixFmtYUYV, nil
	}
	return 0, fmt.Errorf("%w: no MJPEG or YUYV format", ErrCameraUnavailable)
}

func (c *cameraSource) Frames() <-chan image.Image {
	return c.frames
}

func (c *cameraSource) readLoop() {
	defer func() {
		c.cam.StopStreaming()
		c.cam.Close()
		close(c.frames)
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		var img image.Image
		if err := c.cam.WaitForFrame(5); err == nil {
			if raw, err := c.cam.ReadFrame(); err == nil {
				img = c.decodeFrame(raw)
			}
		}
		// nil and zero-dim frames drive the session's bad-frame guard

		select {
		case c.frames <- img:
		case <-c.done:
			return
		}
	}
}

func (c *cameraSource) decodeFrame(raw []byte) image.Image {
	switch c.format {
	case pixFmtMJPEG:
		img, err := jpeg.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil
		}
		return img
	case pixFmtYUYV:
		return yuyvToGray(raw, c.width, c.height)
	default:
		return nil
	}
}

// yuyvToGray keeps only the luma bytes; the decoders binarize on
// luminance anyway.
func yuyvToGray(raw []byte, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	n := len(img.Pix)
	for i := 0; i*2 < len(raw) && i < n; i++ {
		img.Pix[i] = raw[i*2]
	}
	return img
}

// Close releases the camera. Releasing an already-released camera is a
// no-op.
func (c *cameraSource) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}
