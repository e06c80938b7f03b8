package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// InteractiveApprover asks for a y/N confirmation on a terminal. The change is
// applied immediately, so the default answer is no.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an approver reading answers from in and
// writing prompts to out.
func NewInteractiveApprover(in io.Reader, out io.Writer) paramflip.Approver {
	return &InteractiveApprover{input: in, output: out}
}

// RequestApproval prompts once and accepts "y" or "yes" in any case.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, group, name string) (bool, error) {
	fmt.Fprintf(a.output, "\nAbout to toggle parameter '%s' in parameter group '%s'.\n", name, group)
	fmt.Fprintln(a.output, "The change is applied immediately to every instance using this group.")
	fmt.Fprint(a.output, "Proceed? [y/N]: ")

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || input == "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		}
		fmt.Fprintln(a.output, "✗ Cancelled; no change made.")
		return false, nil
	}
}

var _ paramflip.Approver = (*InteractiveApprover)(nil)
