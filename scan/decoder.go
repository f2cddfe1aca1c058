// Package scan turns camera frames into ticket codes. A session holds the
// camera exclusively from start until first decode or stop, attempts one
// decode per delivered frame, and hands the payload to the caller exactly
// as if it had been typed.
package scan

import (
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var errNoCode = errors.New("no code in frame")

// Decoder attempts to read one optical code out of a frame. The variant
// is chosen once at session start, never re-selected per frame.
type Decoder interface {
	Name() string
	Decode(img image.Image) (string, error)
}

type zxingDecoder struct {
	name   string
	reader gozxing.Reader
}

// NewQRDecoder reads QR codes, the format printed on the code sheets.
func NewQRDecoder() Decoder {
	return &zxingDecoder{name: "qr", reader: qrcode.NewQRCodeReader()}
}

// NewBarcodeDecoder reads the common 1-D formats for externally printed
// ticket stock.
func NewBarcodeDecoder() Decoder {
	return &zxingDecoder{name: "barcode", reader: oned.NewMultiFormatOneDReader(nil)}
}

// SelectDecoder picks the variant for a session. Unknown modes fall back
// to QR.
func SelectDecoder(mode string) Decoder {
	if mode == "barcode" {
		return NewBarcodeDecoder()
	}
	return NewQRDecoder()
}

func (d *zxingDecoder) Name() string { return d.name }

func (d *zxingDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	res, err := d.reader.Decode(bmp, nil)
	if err != nil {
		return "", errNoCode
	}
	return res.GetText(), nil
}
