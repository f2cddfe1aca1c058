package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/huyi122/Ticket-Master/config"
	"github.com/huyi122/Ticket-Master/scan"
)

// Scan opens the camera, decodes one code and feeds it through the same
// validation path as manual entry. Camera trouble is a user message, not
// a crash; manual entry keeps working without it.
func (a *App) Scan(ctx context.Context, device, mode string, checkIn bool) error {
	if device == "" {
		device = config.Config("VTM_CAMERA_DEVICE")
	}
	src, err := scan.OpenCamera(device)
	if err != nil {
		if errors.Is(err, scan.ErrCameraUnavailable) {
			fmt.Printf("camera unavailable: %v. Enter the code manually instead.\n", err)
			return nil
		}
		return err
	}

	code, err := a.Scanner.Start(ctx, src, scan.SelectDecoder(mode))
	switch {
	case errors.Is(err, scan.ErrScanActive):
		fmt.Println("previous scan stopped")
		return nil
	case errors.Is(err, scan.ErrScanAborted):
		fmt.Println("scan aborted: the camera produced no usable frames")
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Println("scan cancelled")
		return nil
	case err != nil:
		fmt.Printf("scan failed: %v\n", err)
		return nil
	}

	return a.Validate(ctx, code, checkIn)
}
