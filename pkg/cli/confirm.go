package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/seedctl/seedctl/pkg/cli/internal/output"
)

// errCancelled makes a declined destructive prompt a failure, so scripts
// notice a reset that never ran.
var errCancelled = errors.New("reset cancelled")

// confirmDestructive warns about a destructive operation and prompts for
// confirmation unless --confirm was passed.
func confirmDestructive(warning string) error {
	fmt.Fprintln(os.Stderr, output.Bold(output.Error(output.Icon("⚠️  ", "[!] ")+warning)))
	fmt.Fprintln(os.Stderr, "This action cannot be undone.")
	if dbConfirm {
		return nil
	}

	confirmed, err := askConfirm("Are you sure you want to continue?")
	if err != nil {
		return err
	}
	if !confirmed {
		return errCancelled
	}
	return nil
}

// askConfirm shows an interactive prompt on a terminal and falls back to a
// plain yes line on stdin when input is piped.
func askConfirm(title string) (bool, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Affirmative("Yes").
					Negative("No").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return false, fmt.Errorf("confirmation prompt failed: %w", err)
		}
		return confirmed, nil
	}

	fmt.Fprint(os.Stderr, "Type 'yes' to confirm: ")
	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(input), "yes"), nil
}
