package ui

import (
	"context"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// AutoApprover approves every request. It is used when no terminal is
// attached or when --yes is given.
type AutoApprover struct{}

// NewAutoApprover creates a new AutoApprover.
func NewAutoApprover() paramflip.Approver {
	return AutoApprover{}
}

// RequestApproval approves unless ctx is already done.
func (AutoApprover) RequestApproval(ctx context.Context, _, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

var _ paramflip.Approver = AutoApprover{}
