package sharelink_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charwekey/TechWrapSaga/internal/sharelink"
)

const testURL = "https://techwrapsaga.com/recap/abc"

// recorder builds an Emitter whose every step is scripted, tracking which
// steps ran and what they received.
type recorder struct {
	nativeErr    error
	clipboardErr error

	nativeCalls    int
	clipboardText  string
	clipboardCalls int
	notifications  []string
	prompts        []string
}

func (r *recorder) emitter() *sharelink.Emitter {
	return &sharelink.Emitter{
		Native: func(title, text, url string) error {
			r.nativeCalls++
			return r.nativeErr
		},
		Clipboard: func(text string) error {
			r.clipboardCalls++
			r.clipboardText = text
			return r.clipboardErr
		},
		Notify: func(msg string) { r.notifications = append(r.notifications, msg) },
		Prompt: func(url string) { r.prompts = append(r.prompts, url) },
	}
}

func TestShare_NativeSucceeds(t *testing.T) {
	r := &recorder{}

	out := r.emitter().Share(testURL)

	assert.Equal(t, sharelink.OutcomeNative, out)
	assert.Equal(t, 1, r.nativeCalls)
	assert.Zero(t, r.clipboardCalls, "clipboard must not run after a native success")
	assert.Empty(t, r.notifications)
	assert.Empty(t, r.prompts)
}

// TestShare_CancelIsSilent: a user dismissal stops the chain without
// touching the clipboard and without any message.
func TestShare_CancelIsSilent(t *testing.T) {
	r := &recorder{nativeErr: sharelink.ErrCancelled}

	out := r.emitter().Share(testURL)

	assert.Equal(t, sharelink.OutcomeCancelled, out)
	assert.Zero(t, r.clipboardCalls)
	assert.Empty(t, r.notifications)
	assert.Empty(t, r.prompts)
}

// TestShare_FallsBackToClipboard: a non-cancel native failure copies the URL
// and notifies the user.
func TestShare_FallsBackToClipboard(t *testing.T) {
	r := &recorder{nativeErr: errors.New("share sheet unavailable")}

	out := r.emitter().Share(testURL)

	assert.Equal(t, sharelink.OutcomeClipboard, out)
	assert.Equal(t, testURL, r.clipboardText)
	require.Len(t, r.notifications, 1)
	assert.Equal(t, "Link copied to clipboard!", r.notifications[0])
	assert.Empty(t, r.prompts)
}

// TestShare_ManualIsTerminal: when both native and clipboard fail the user is
// prompted to copy by hand and Share still reports an outcome, never an error.
func TestShare_ManualIsTerminal(t *testing.T) {
	r := &recorder{
		nativeErr:    errors.New("share sheet unavailable"),
		clipboardErr: errors.New("no clipboard"),
	}

	out := r.emitter().Share(testURL)

	assert.Equal(t, sharelink.OutcomeManual, out)
	assert.Empty(t, r.notifications, "no copied confirmation when the copy failed")
	require.Len(t, r.prompts, 1)
	assert.Equal(t, testURL, r.prompts[0])
}

// TestShare_WrappedCancelIsStillCancel: cancellation survives error wrapping.
func TestShare_WrappedCancelIsStillCancel(t *testing.T) {
	r := &recorder{nativeErr: errors.Join(errors.New("sheet closed"), sharelink.ErrCancelled)}

	out := r.emitter().Share(testURL)

	assert.Equal(t, sharelink.OutcomeCancelled, out)
	assert.Zero(t, r.clipboardCalls)
}

func TestNew_WiresOutputWriter(t *testing.T) {
	var buf bytes.Buffer
	e := sharelink.New(&buf)

	e.Notify("Link copied to clipboard!")
	assert.Contains(t, buf.String(), "Link copied to clipboard!")

	e.Prompt(testURL)
	assert.Contains(t, buf.String(), testURL)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "native", sharelink.OutcomeNative.String())
	assert.Equal(t, "cancelled", sharelink.OutcomeCancelled.String())
	assert.Equal(t, "clipboard", sharelink.OutcomeClipboard.String())
	assert.Equal(t, "manual", sharelink.OutcomeManual.String())
}
