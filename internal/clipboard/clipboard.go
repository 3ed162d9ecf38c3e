//go:generate mockgen -source=clipboard.go -destination=mock_clipboard.go -package=clipboard

// Package clipboard writes selected sample values to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not supported on this system")

type Copier interface {
	Copy(text string) error
}

// System copies through atotto/clipboard (pbcopy, xclip/xsel, wl-copy, Windows API).
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Noop is used when clipboard integration is disabled in the config.
type Noop struct{}

func (Noop) Copy(string) error { return nil }

var (
	_ Copier = (*System)(nil)
	_ Copier = Noop{}
)
