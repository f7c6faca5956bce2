package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	entries := []contract.CheckInEntry{
		{
			ID:        "0a1b2c3d-0000-0000-0000-000000000000",
			Method:    domain.MethodAssessment,
			Source:    "overwhelmed",
			Goal:      "calm",
			Steps:     []string{"overwhelmed", "grounded", "calm"},
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        "ffff0000-0000-0000-0000-000000000000",
			Method:    domain.MethodNamed,
			Source:    "bored",
			Steps:     []string{"bored"},
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}

	out := FormatHistory(entries, now)
	assert.Contains(t, out, "RECENT CHECK-INS")
	assert.Contains(t, out, "0a1b2c3d")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "check-in")
	assert.Contains(t, out, "overwhelmed -> grounded -> calm")
	assert.Contains(t, out, "no path")
	assert.Contains(t, out, "2h ago")
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Contains(t, FormatHistory(nil, time.Now()), "No check-ins recorded yet.")
}
