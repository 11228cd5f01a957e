package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Prompter asks permission and contact questions on stdin/stdout. The session
// prompt reads through the same reader so buffered input is never lost.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// AskPermission implements ports.PermissionAsker.
func (p *Prompter) AskPermission(permission domain.Permission, rationale string) (bool, error) {
	fmt.Fprintf(p.out, "\n%s\n", rationale)
	fmt.Fprintf(p.out, "Allow %s? [y/N]: ", strings.ReplaceAll(string(permission), "_", " "))
	line, err := p.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes", nil
}

// ChooseContact implements ports.ContactChooser. A blank line or end of
// input cancels.
func (p *Prompter) ChooseContact(choices []domain.ContactSelection) (int, bool, error) {
	fmt.Fprintln(p.out, "\nContacts:")
	for i, c := range choices {
		label := ""
		if c.Label != "" {
			label = " (" + c.Label + ")"
		}
		fmt.Fprintf(p.out, "  %d) %s%s  %s\n", i+1, c.Name, label, c.Number)
	}
	for {
		fmt.Fprintf(p.out, "Pick a number [1-%d], blank to cancel: ", len(choices))
		line, err := p.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, false, err
		}
		if line == "" {
			return 0, false, nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(choices) {
			return n - 1, true, nil
		}
		fmt.Fprintf(p.out, "%q is not in the list.\n", line)
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
	}
}

// ReadLine reads one trimmed line. At end of input the partial line is
// returned together with io.EOF.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

// Print writes to the prompter's output.
func (p *Prompter) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

var (
	_ ports.PermissionAsker = (*Prompter)(nil)
	_ ports.ContactChooser  = (*Prompter)(nil)
)
