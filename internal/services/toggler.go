package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/paramflip/internal/rdsadmin"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// ToggleService flips a binary parameter of a DB parameter group.
// Thread-Safety: safe for concurrent use, but overlapping toggles of the same
// group race (read-modify-write without a conditional write).
type ToggleService struct {
	store  paramflip.ParameterStore
	logger paramflip.Logger
	policy paramflip.Policy
}

// NewToggleService creates a ToggleService with all dependencies injected.
// Panics on nil dependencies; these are wiring mistakes, not runtime conditions.
func NewToggleService(store paramflip.ParameterStore, logger paramflip.Logger, policy paramflip.Policy) *ToggleService {
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &ToggleService{
		store:  store,
		logger: logger,
		policy: policy,
	}
}

// NextValue returns the value a toggle writes for current, and whether a
// write happens at all. "0" and "1" swap; anything else is left alone unless
// the policy is UnexpectedForce, which writes "0".
func NextValue(current string, policy paramflip.UnexpectedPolicy) (string, bool) {
	switch current {
	case paramflip.ValueOff:
		return paramflip.ValueOn, true
	case paramflip.ValueOn:
		return paramflip.ValueOff, true
	}
	if policy == paramflip.UnexpectedForce {
		return paramflip.ValueOff, true
	}
	return "", false
}

// Inspect reads the parameter and reports what Toggle would do, without writing.
func (s *ToggleService) Inspect(ctx context.Context, group, name string) (*paramflip.Report, error) {
	params, err := s.store.ListParameters(ctx, group)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Scanned %d parameter(s) in parameter group '%s'", len(params), group)

	report := &paramflip.Report{
		Group:     group,
		Parameter: name,
	}

	current, found := lookup(params, name)
	report.Found = found

	switch {
	case found && current.HasValue:
		report.Previous = current.Value
	case s.policy.Missing == paramflip.MissingAssumeOff:
		report.Previous = paramflip.ValueOff
	case found:
		report.Previous = paramflip.ValueNotSet
	default:
		report.Outcome = paramflip.OutcomeNotFound
		return report, nil
	}

	next, ok := NextValue(report.Previous, s.policy.Unexpected)
	if !ok {
		report.Outcome = paramflip.OutcomeUnchanged
		return report, nil
	}

	report.Outcome = paramflip.OutcomeToggled
	report.New = next
	return report, nil
}

// Toggle flips the parameter and reports what happened.
// At most one modify call is issued, with apply method "immediate".
func (s *ToggleService) Toggle(ctx context.Context, group, name string) (*paramflip.Report, error) {
	report, err := s.Inspect(ctx, group, name)
	if err != nil {
		return nil, err
	}

	switch report.Outcome {
	case paramflip.OutcomeNotFound:
		s.logger.Warn("Parameter '%s' not found in parameter group '%s'.", name, group)
		return report, nil
	case paramflip.OutcomeUnchanged:
		s.logger.Warn("Parameter '%s' has unexpected value '%s'; no change made.", name, report.Previous)
		return report, nil
	}

	if report.Found {
		s.logger.Info("The value of parameter '%s' is '%s'.", name, report.Previous)
	} else {
		s.logger.Info("Parameter '%s' not found in parameter group '%s'; assuming '%s'.", name, group, report.Previous)
	}

	err = s.store.ModifyParameter(ctx, group, paramflip.Parameter{
		Name:        name,
		Value:       report.New,
		HasValue:    true,
		ApplyMethod: paramflip.ApplyMethodImmediate,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Parameter %s in parameter group %s changed to: %s", name, group, report.New)
	return report, nil
}

// Invoke runs Toggle and converts the outcome into an invocation result.
// Failures never escape: they become status 500 with the error in the body.
func (s *ToggleService) Invoke(ctx context.Context, group, name string) paramflip.Result {
	report, err := s.Toggle(ctx, group, name)
	if err != nil {
		s.logger.Error("Error modifying RDS parameter: %v", err)
		if c := rdsadmin.Classify(err); c.Class != rdsadmin.ClassUnknown {
			s.logger.Verbose("Failure is %s (code=%q)", c.Class, c.Code)
		}
		return paramflip.Result{
			StatusCode: paramflip.StatusError,
			Body:       fmt.Sprintf("Error: %v", err),
		}
	}

	return paramflip.Result{
		StatusCode: paramflip.StatusOK,
		Body:       report.Message(),
	}
}

// lookup returns the first parameter named name, in list order.
func lookup(params []paramflip.Parameter, name string) (paramflip.Parameter, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return paramflip.Parameter{}, false
}
