// Package confirmations provides the yes/no prompts used before
// destructive operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Func asks prompt and reports whether the user agreed.
type Func func(prompt string) bool

// Fixed answers every prompt with answer, as for --yes.
func Fixed(answer bool) Func {
	return func(string) bool { return answer }
}

// Console reads a y/N answer from in, writing the prompt to out. Anything
// but "y" or "yes" declines, including end of input.
func Console(in io.Reader, out io.Writer) Func {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// Interactive uses pterm's confirm prompt when stdin is a terminal and
// falls back to Console otherwise.
func Interactive() Func {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return Console(os.Stdin, os.Stdout)
	}
	return func(prompt string) bool {
		ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
		if err != nil {
			return false
		}
		return ok
	}
}
