package crt

import "testing"

func TestSinCos14ZeroAngle(t *testing.T) {
	sin, cos := SinCos14(0)
	if sin != 0 {
		t.Errorf("sin(0) = %d, want 0", sin)
	}
	if cos != 32768 {
		t.Errorf("cos(0) = %d, want 32768", cos)
	}
}

func TestSinCos14QuarterTurn(t *testing.T) {
	sin, cos := SinCos14(T14Full / 4)
	if sin != 32768 {
		t.Errorf("sin(pi/2) = %d, want 32768", sin)
	}
	if cos < -8 || cos > 8 {
		t.Errorf("cos(pi/2) = %d, want ~0", cos)
	}
}

func TestSinCos14HalfTurn(t *testing.T) {
	sin, cos := SinCos14(T14Full / 2)
	if sin < -8 || sin > 8 {
		t.Errorf("sin(pi) = %d, want ~0", sin)
	}
	if cos != -32768 {
		t.Errorf("cos(pi) = %d, want -32768", cos)
	}
}

func TestSinCos14Periodic(t *testing.T) {
	for _, n := range []int{0, 100, 4096, 8192, 12000, 16383} {
		sa, ca := SinCos14(n)
		sb, cb := SinCos14(n + T14Full)
		if sa != sb || ca != cb {
			t.Errorf("SinCos14(%d) != SinCos14(%d+T14Full): (%d,%d) vs (%d,%d)", n, n, sa, ca, sb, cb)
		}
	}
}

func TestSinCos14BoundedAmplitude(t *testing.T) {
	for n := 0; n < T14Full; n += 37 {
		sin, cos := SinCos14(n)
		if sin > 32768 || sin < -32768 {
			t.Errorf("sin(%d) = %d out of range", n, sin)
		}
		if cos > 32768 || cos < -32768 {
			t.Errorf("cos(%d) = %d out of range", n, cos)
		}
	}
}
