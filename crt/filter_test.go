package crt

import "testing"

func TestIIRLowpassSettlesToStep(t *testing.T) {
	var f iirLowpass
	initIIR(&f, lineFreq, yFreq)
	var out int
	for i := 0; i < 2000; i++ {
		out = f.apply(100)
	}
	if out < 90 || out > 100 {
		t.Errorf("iirLowpass did not settle near step input: got %d, want ~100", out)
	}
}

func TestIIRLowpassResetClearsHistory(t *testing.T) {
	var f iirLowpass
	initIIR(&f, lineFreq, yFreq)
	for i := 0; i < 100; i++ {
		f.apply(100)
	}
	resetIIR(&f)
	got := f.apply(0)
	if got != 0 {
		t.Errorf("iirLowpass.apply(0) after reset = %d, want 0", got)
	}
}

func TestIIRLowpassZeroInputStaysZero(t *testing.T) {
	var f iirLowpass
	initIIR(&f, lineFreq, yFreq)
	for i := 0; i < 50; i++ {
		if got := f.apply(0); got != 0 {
			t.Errorf("iirLowpass.apply(0) = %d, want 0", got)
		}
	}
}

func TestEQFilterResetClearsHistory(t *testing.T) {
	var f eqFilter
	initEQ(&f, 10, 100, 910, 65536, 8192, 9175)
	for i := 0; i < 20; i++ {
		f.apply(100)
	}
	resetEQ(&f)
	got := f.apply(0)
	if got != 0 {
		t.Errorf("eqFilter.apply(0) after reset = %d, want 0", got)
	}
}

func TestEQFilterStepResponseBounded(t *testing.T) {
	var f eqFilter
	initEQ(&f, 10, 100, 910, 65536, 8192, 9175)
	resetEQ(&f)
	for i := 0; i < 200; i++ {
		out := f.apply(100)
		if out < -1000 || out > 1000 {
			t.Fatalf("eqFilter output diverged at step %d: %d", i, out)
		}
	}
}

func TestEQFilterZeroGainsZeroOutput(t *testing.T) {
	var f eqFilter
	initEQ(&f, 10, 100, 910, 0, 0, 0)
	resetEQ(&f)
	for i := 0; i < 20; i++ {
		if got := f.apply(100); got != 0 {
			t.Errorf("eqFilter with all-zero gains apply(100) = %d, want 0", got)
		}
	}
}
