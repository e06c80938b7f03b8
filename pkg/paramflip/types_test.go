package paramflip_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

func TestParameter_DisplayValue(t *testing.T) {
	assert.Equal(t, "1", paramflip.Parameter{Name: "x", Value: "1", HasValue: true}.DisplayValue())
	assert.Equal(t, "", paramflip.Parameter{Name: "x", Value: "", HasValue: true}.DisplayValue())
	assert.Equal(t, paramflip.ValueNotSet, paramflip.Parameter{Name: "x"}.DisplayValue())
}

func TestParseMissingPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    paramflip.MissingPolicy
		wantErr bool
	}{
		{"", paramflip.MissingSkip, false},
		{"skip", paramflip.MissingSkip, false},
		{" Assume-Off ", paramflip.MissingAssumeOff, false},
		{"default", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := paramflip.ParseMissingPolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, paramflip.ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnexpectedPolicy(t *testing.T) {
	got, err := paramflip.ParseUnexpectedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, paramflip.UnexpectedSkip, got)

	got, err = paramflip.ParseUnexpectedPolicy("FORCE")
	require.NoError(t, err)
	assert.Equal(t, paramflip.UnexpectedForce, got)

	_, err = paramflip.ParseUnexpectedPolicy("flip")
	assert.ErrorIs(t, err, paramflip.ErrInvalidConfig)
}

func TestReport_Message(t *testing.T) {
	toggled := &paramflip.Report{Group: "g", Parameter: "slow_query_log", Outcome: paramflip.OutcomeToggled, Found: true, Previous: "0", New: "1"}
	assert.True(t, toggled.Changed())
	assert.Equal(t, "Successfully toggled slow_query_log from 0 to 1", toggled.Message())

	missing := &paramflip.Report{Group: "g", Parameter: "slow_query_log", Outcome: paramflip.OutcomeNotFound}
	assert.False(t, missing.Changed())
	assert.Contains(t, missing.Message(), "not found in parameter group 'g'")

	odd := &paramflip.Report{Group: "g", Parameter: "slow_query_log", Outcome: paramflip.OutcomeUnchanged, Found: true, Previous: "ON"}
	assert.Contains(t, odd.Message(), "unexpected value 'ON'")
	assert.Contains(t, odd.Message(), "no change made")
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "toggled", paramflip.OutcomeToggled.String())
	assert.Equal(t, "not-found", paramflip.OutcomeNotFound.String())
	assert.Equal(t, "unchanged", paramflip.OutcomeUnchanged.String())
	assert.Equal(t, "Outcome(9)", paramflip.Outcome(9).String())
}
