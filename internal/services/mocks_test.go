package services

import (
	"context"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// memoryStore is an in-memory ParameterStore. Modifications are applied to
// params so successive toggles observe each other.
type memoryStore struct {
	params    []paramflip.Parameter
	listErr   error
	modifyErr error

	listCalls int
	modified  []paramflip.Parameter
	groups    []string
}

func (m *memoryStore) ListParameters(_ context.Context, group string) ([]paramflip.Parameter, error) {
	m.listCalls++
	m.groups = append(m.groups, group)
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]paramflip.Parameter, len(m.params))
	copy(out, m.params)
	return out, nil
}

func (m *memoryStore) ModifyParameter(_ context.Context, group string, p paramflip.Parameter) error {
	m.groups = append(m.groups, group)
	m.modified = append(m.modified, p)
	if m.modifyErr != nil {
		return m.modifyErr
	}
	for i := range m.params {
		if m.params[i].Name == p.Name {
			m.params[i].Value = p.Value
			m.params[i].HasValue = true
			return nil
		}
	}
	m.params = append(m.params, p)
	return nil
}

func set(name, value string) paramflip.Parameter {
	return paramflip.Parameter{Name: name, Value: value, HasValue: true, ApplyMethod: "pending-reboot"}
}

func unset(name string) paramflip.Parameter {
	return paramflip.Parameter{Name: name, ApplyMethod: "pending-reboot"}
}
