// Package sharelink delivers a recap's canonical URL to the user through a
// fixed fallback chain: native share → clipboard → manual copy prompt.
// Every transition is explicit so each one can be tested in isolation, and
// no step ever lets an error escape the chain.
package sharelink

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Share sheet content passed to the native step.
const (
	shareTitle = "TechWrapSaga 2025"
	shareText  = "Check out my 2025 tech wrap!"
)

// ErrCancelled is returned by a native step when the user dismissed the share
// sheet. Cancellation is a normal, silent outcome: the chain stops without
// falling back to the clipboard.
var ErrCancelled = errors.New("share cancelled by user")

// Outcome reports which step of the chain delivered the URL.
type Outcome int

const (
	// OutcomeNative: the native share step succeeded.
	OutcomeNative Outcome = iota
	// OutcomeCancelled: the user dismissed the native share sheet.
	OutcomeCancelled
	// OutcomeClipboard: native failed, the URL was copied to the clipboard.
	OutcomeClipboard
	// OutcomeManual: both prior steps failed; the user was prompted to copy
	// the URL by hand. This step always succeeds structurally.
	OutcomeManual
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNative:
		return "native"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeClipboard:
		return "clipboard"
	default:
		return "manual"
	}
}

// Emitter runs the share chain. Steps are injectable; the zero value of any
// step falls back to the platform default.
type Emitter struct {
	// Native attempts the platform share facility with a title/text/url
	// triple. Return ErrCancelled for user dismissal, any other error to
	// fall through to the clipboard.
	Native func(title, text, url string) error

	// Clipboard writes text to the system clipboard.
	Clipboard func(text string) error

	// Notify shows a confirmation message to the user.
	Notify func(msg string)

	// Prompt asks the user to select and copy the URL themselves.
	Prompt func(url string)
}

// New returns an Emitter wired to the platform defaults, writing
// notifications and the manual prompt to out.
func New(out io.Writer) *Emitter {
	return &Emitter{
		Native: func(_, _, url string) error {
			return browser.OpenURL(url)
		},
		Clipboard: clipboard.WriteAll,
		Notify: func(msg string) {
			fmt.Fprintln(out, msg)
		},
		Prompt: func(url string) {
			fmt.Fprintf(out, "Copy your recap link manually:\n\n    %s\n\n", url)
		},
	}
}

// Share runs the chain for url and reports how it was delivered.
// State machine: Attempt-Native → {Success | UserCancel: done} on any other
// failure → Attempt-Clipboard → {Success: notify | Failure: manual prompt}.
// Share never returns an error; the manual prompt is the terminal fallback.
func (e *Emitter) Share(url string) Outcome {
	err := e.Native(shareTitle, shareText, url)
	if err == nil {
		return OutcomeNative
	}
	if errors.Is(err, ErrCancelled) {
		return OutcomeCancelled
	}

	if err := e.Clipboard(url); err == nil {
		e.Notify("Link copied to clipboard!")
		return OutcomeClipboard
	}

	e.Prompt(url)
	return OutcomeManual
}
