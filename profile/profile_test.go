package profile

import "testing"

func TestProfiler_Disabled(t *testing.T) {
	tests := []struct {
		name string
		p    Profiler
	}{
		{"empty", Profiler{}},
		{"unknown", Profiler{Mode: "bogus", Path: t.TempDir()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Enabled() {
				t.Fatal("expected profiler to be disabled")
			}

			s := tt.p.Start()
			if _, ok := s.(ignore); !ok {
				t.Errorf("expected no-op stopper, got %T", s)
			}

			s.Stop()
		})
	}
}

func TestModes_Sorted(t *testing.T) {
	modes := Modes()
	for i := 1; i < len(modes); i++ {
		if modes[i-1] >= modes[i] {
			t.Errorf("modes not sorted: %v", modes)
		}
	}
}
