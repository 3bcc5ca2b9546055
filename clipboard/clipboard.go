// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/tint"
)

// Ensure implementations satisfy the Clipboard interface.
var (
	_ tint.Clipboard = (*PBCopy)(nil)
	_ tint.Clipboard = (*System)(nil)
)

// New returns the clipboard best suited to the current platform:
// PBCopy when the pbcopy command is available, System otherwise.
func New() tint.Clipboard {
	if _, err := exec.LookPath("pbcopy"); err == nil {
		return NewPBCopy()
	}
	return NewSystem()
}

// PBCopy implements Clipboard using the macOS pbcopy command.
type PBCopy struct{}

// NewPBCopy returns a new PBCopy clipboard.
func NewPBCopy() *PBCopy {
	return &PBCopy{}
}

// Copy writes content to the system clipboard using pbcopy.
func (p *PBCopy) Copy(content string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}

// System implements Clipboard using the atotto clipboard library, which
// shells out to xclip, xsel, or wl-copy depending on the platform.
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if err := atotto.WriteAll(content); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
