package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

func TestRenderReport_Plain(t *testing.T) {
	r := &paramflip.Report{Group: "my-database-pg", Parameter: "slow_query_log", Outcome: paramflip.OutcomeToggled, Found: true, Previous: "0", New: "1"}

	got := RenderReport(r, false)

	want := strings.Join([]string{
		"slow_query_log",
		"group       my-database-pg",
		"status      ✓ 0 → 1",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderReport_PlainOutcomes(t *testing.T) {
	notFound := RenderReport(&paramflip.Report{Group: "g", Parameter: "p", Outcome: paramflip.OutcomeNotFound}, false)
	assert.Contains(t, notFound, "✗ not found")

	unchanged := RenderReport(&paramflip.Report{Group: "g", Parameter: "p", Outcome: paramflip.OutcomeUnchanged, Previous: "ON"}, false)
	assert.Contains(t, unchanged, "✗ unchanged (ON)")
}

func TestRenderReport_StyledKeepsContent(t *testing.T) {
	r := &paramflip.Report{Group: "g", Parameter: "slow_query_log", Outcome: paramflip.OutcomeToggled, Previous: "1", New: "0"}
	got := RenderReport(r, true)
	assert.Contains(t, got, "slow_query_log")
	assert.Contains(t, got, "1 → 0")
}

func TestRenderError(t *testing.T) {
	assert.Equal(t, "✗ boom", RenderError(errors.New("boom"), false))
	assert.Contains(t, RenderError(errors.New("boom"), true), "boom")
}
