package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForPercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{name: "well below floor", pct: 10, want: AccessStatusBlocked},
		{name: "just below floor", pct: 64.9, want: AccessStatusBlocked},
		{name: "exactly at floor", pct: 65.0, want: AccessStatusAtRisk},
		{name: "between floor and minimum", pct: 70, want: AccessStatusAtRisk},
		{name: "just below minimum", pct: 74.9, want: AccessStatusAtRisk},
		{name: "exactly at minimum", pct: 75.0, want: AccessStatusAllowed},
		{name: "full attendance", pct: 100, want: AccessStatusAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForPercentage(tt.pct))
		})
	}
}

func TestPercentageFor(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		total    int
		want     float64
	}{
		{name: "no classes held means no penalty", attended: 0, total: 0, want: 100},
		{name: "all attended", attended: 10, total: 10, want: 100},
		{name: "none attended", attended: 0, total: 10, want: 0},
		// 8 present + 1 late count as 9 attended out of 10
		{name: "late counts as attended", attended: 9, total: 10, want: 90},
		{name: "blocked range", attended: 12, total: 20, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentageFor(tt.attended, tt.total), 1e-9)
		})
	}
}

// Recomputing from the same inputs must always classify identically: the
// summary is a cache, not a source of truth.
func TestDeriveIsDeterministic(t *testing.T) {
	for _, total := range []int{0, 1, 7, 20, 100} {
		for attended := 0; attended <= total; attended++ {
			first := PercentageFor(attended, total)
			second := PercentageFor(attended, total)
			assert.Equal(t, first, second)
			assert.Equal(t, StatusForPercentage(first), StatusForPercentage(second))
		}
	}
}
