package main

import "testing"

// TestScenariosMatchExpectedScalars re-runs every scenario listed in
// scenarios() and checks it against its documented expected value,
// guarding against the demo host's Op/Literal implementations drifting
// out of sync with the scenario programs.
func TestScenariosMatchExpectedScalars(t *testing.T) {
	m := newDemoMachine()
	for _, sc := range scenarios() {
		v, err := run(m, sc.term)
		if err != nil {
			t.Fatalf("%s: %v", sc.name, err)
		}
		if v.Scalar != sc.want {
			t.Fatalf("%s: got %v, want %v", sc.name, v.Scalar, sc.want)
		}
	}
}
