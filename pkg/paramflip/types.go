package paramflip

import (
	"context"
	"fmt"
	"strings"
)

// Parameter is one entry of a DB parameter group.
type Parameter struct {
	// Name is unique within its parameter group.
	Name string

	// Value is the configured value. Only meaningful when HasValue is true.
	Value string

	// HasValue is false when the API reports no value for the parameter.
	HasValue bool

	// ApplyMethod is either "immediate" or "pending-reboot".
	ApplyMethod string
}

// DisplayValue returns the value, or ValueNotSet when it is absent.
func (p Parameter) DisplayValue() string {
	if !p.HasValue {
		return ValueNotSet
	}
	return p.Value
}

// ParameterStore is the database administration API as seen by the toggler.
type ParameterStore interface {
	// ListParameters returns every parameter of the group in API order,
	// following continuation markers until the list is exhausted.
	ListParameters(ctx context.Context, group string) ([]Parameter, error)

	// ModifyParameter writes exactly one parameter entry to the group.
	ModifyParameter(ctx context.Context, group string, param Parameter) error
}

// Result is the value handed back to the invocation trigger.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body,omitempty"`
}

// Outcome describes what a toggle did.
type Outcome int

const (
	// OutcomeToggled means a modify call was issued.
	OutcomeToggled Outcome = iota
	// OutcomeNotFound means the parameter was absent and nothing was written.
	OutcomeNotFound
	// OutcomeUnchanged means the value was not "0"/"1" and nothing was written.
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeToggled:
		return "toggled"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Report is the structured outcome of one toggle.
type Report struct {
	Group     string
	Parameter string
	Outcome   Outcome

	// Found is true when the parameter exists in the group.
	Found bool

	// Previous is the observed value (ValueNotSet if absent).
	Previous string

	// New is the value written. Empty when nothing was written.
	New string
}

// Changed reports whether a modify call was issued.
func (r *Report) Changed() bool {
	return r.Outcome == OutcomeToggled
}

// Message renders the report as the human-readable result body.
func (r *Report) Message() string {
	switch r.Outcome {
	case OutcomeToggled:
		return fmt.Sprintf("Successfully toggled %s from %s to %s", r.Parameter, r.Previous, r.New)
	case OutcomeNotFound:
		return fmt.Sprintf("Parameter '%s' not found in parameter group '%s'; no change made", r.Parameter, r.Group)
	default:
		return fmt.Sprintf("Parameter '%s' has unexpected value '%s'; no change made", r.Parameter, r.Previous)
	}
}

// MissingPolicy decides what happens when the parameter is not in the group.
type MissingPolicy string

const (
	// MissingSkip logs and leaves the group untouched.
	MissingSkip MissingPolicy = "skip"
	// MissingAssumeOff treats the parameter as "0" and writes "1".
	MissingAssumeOff MissingPolicy = "assume-off"
)

// UnexpectedPolicy decides what happens when the value is neither "0" nor "1".
type UnexpectedPolicy string

const (
	// UnexpectedSkip logs a warning and leaves the value untouched.
	UnexpectedSkip UnexpectedPolicy = "skip"
	// UnexpectedForce writes "0" for any value other than "0".
	UnexpectedForce UnexpectedPolicy = "force"
)

// Policy bundles the decisions the toggler makes for irregular input.
type Policy struct {
	Missing    MissingPolicy
	Unexpected UnexpectedPolicy
}

// DefaultPolicy skips both a missing parameter and an unexpected value.
func DefaultPolicy() Policy {
	return Policy{Missing: MissingSkip, Unexpected: UnexpectedSkip}
}

// ParseMissingPolicy parses a policy name; the empty string yields MissingSkip.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MissingSkip:
		return MissingSkip, nil
	case MissingAssumeOff:
		return MissingAssumeOff, nil
	}
	return "", fmt.Errorf("%w: unknown missing policy %q (want %q or %q)", ErrInvalidConfig, s, MissingSkip, MissingAssumeOff)
}

// ParseUnexpectedPolicy parses a policy name; the empty string yields UnexpectedSkip.
func ParseUnexpectedPolicy(s string) (UnexpectedPolicy, error) {
	switch UnexpectedPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnexpectedSkip:
		return UnexpectedSkip, nil
	case UnexpectedForce:
		return UnexpectedForce, nil
	}
	return "", fmt.Errorf("%w: unknown unexpected-value policy %q (want %q or %q)", ErrInvalidConfig, s, UnexpectedSkip, UnexpectedForce)
}
