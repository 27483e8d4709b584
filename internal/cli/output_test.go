package cli

import (
	"testing"

	"github.com/haskel/headroom/internal/simulation"
)

func TestFormatTaskRange(t *testing.T) {
	tests := []struct {
		name string
		task simulation.TaskSpec
		want string
	}{
		{
			name: "ranged duration",
			task: simulation.TaskSpec{Name: "prep", MinHours: 2, MaxHours: 4},
			want: "prep [2.0-4.0h]",
		},
		{
			name: "fixed duration collapses to one value",
			task: simulation.TaskSpec{Name: "travel", MinHours: 3, MaxHours: 3},
			want: "travel [3.0h]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTaskRange(tt.task); got != tt.want {
				t.Errorf("formatTaskRange(%+v) = %q, want %q", tt.task, got, tt.want)
			}
		})
	}
}
