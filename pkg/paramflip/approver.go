package paramflip

import "context"

// Approver confirms a write before it is sent to the management API.
//
// Implementations:
//   - AutoApprover: approves without asking (Lambda, pipes, --yes)
//   - InteractiveApprover: asks on the terminal
type Approver interface {
	// RequestApproval returns true when the toggle of name in group may proceed.
	RequestApproval(ctx context.Context, group, name string) (bool, error)
}
