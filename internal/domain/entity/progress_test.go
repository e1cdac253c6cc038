package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCourseProgress(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"no published chapters", 0, 0, 0},
		{"nothing completed", 0, 4, 0},
		{"halfway", 2, 4, 50},
		{"one third", 1, 3, 100.0 / 3.0},
		{"all done", 4, 4, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			progress := ComputeCourseProgress(tc.completed, tc.total)
			assert.Equal(t, tc.completed, progress.CompletedChapters)
			assert.Equal(t, tc.total, progress.TotalChapters)
			assert.InDelta(t, tc.want, progress.Percentage, 1e-9)
		})
	}
}
