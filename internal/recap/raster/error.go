package raster

import "fmt"

// guidance is the user-facing fallback instruction shown whenever capture
// fails. The caller must never receive corrupt image bytes alongside it.
const guidance = "Failed to generate image. Please take a manual screenshot of your recap instead."

// CaptureError reports that rasterization could not produce an image.
// It is a distinct failure signal, not a corrupt file: callers should show
// Guidance to the user and skip any download.
type CaptureError struct {
	Reason string
	Err    error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capture failed: %s: %v", e.Reason, e.Err)
	}
	return "capture failed: " + e.Reason
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Guidance returns the actionable instruction to show the user.
func (e *CaptureError) Guidance() string { return guidance }

// captureErr wraps err into a *CaptureError with a short reason.
func captureErr(reason string, err error) error {
	return &CaptureError{Reason: reason, Err: err}
}
