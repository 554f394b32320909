package utils

import (
	"bytes"
	"testing"

	"liftsim/src/types"
)

func TestPrintStatus(t *testing.T) {
	target := 7
	tests := []struct {
		st       types.LiftState
		expected string
	}{
		{
			types.LiftState{Floor: 1},
			"Floor: 1 | Stationary | Dir: Stop | Target: - | Calls: [] | Goes: []\n",
		},
		{
			types.LiftState{Floor: 4, Behaviour: types.Moving, Dir: types.Up, Target: &target, Calls: []int{7}, Goes: []int{2, 9}},
			"Floor: 4 | Moving | Dir: Up | Target: 7 | Calls: [7] | Goes: [2 9]\n",
		},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		PrintStatus(&buf, tt.st)
		if buf.String() != tt.expected {
			t.Errorf("PrintStatus() wrote %q, expected %q", buf.String(), tt.expected)
		}
	}
}
