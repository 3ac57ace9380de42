package crt

import "testing"

func TestPosmodAlwaysNonNegative(t *testing.T) {
	cases := []struct{ x, n int }{
		{-1, 4}, {-5, 4}, {5, 4}, {0, 4}, {-100, 7}, {100, 7},
	}
	for _, c := range cases {
		got := posmod(c.x, c.n)
		if got < 0 || got >= c.n {
			t.Errorf("posmod(%d, %d) = %d, want in [0, %d)", c.x, c.n, got, c.n)
		}
	}
}

func TestExpxZeroIsOne(t *testing.T) {
	if got := expx(0); got != expOne {
		t.Errorf("expx(0) = %d, want %d", got, expOne)
	}
}

func TestExpxMonotonic(t *testing.T) {
	prev := expx(-4 * expOne)
	for n := -3; n <= 4; n++ {
		cur := expx(n * expOne)
		if cur <= prev {
			t.Errorf("expx not increasing at n=%d: prev=%d cur=%d", n, prev, cur)
		}
		prev = cur
	}
}

func TestExpxMatchesReferencePowers(t *testing.T) {
	want := map[int]int{0: expOne, 1: 5567, 2: 15133, 3: 41135, 4: 111817}
	for n, w := range want {
		got := expx(n * expOne)
		diff := got - w
		if diff < 0 {
			diff = -diff
		}
		if diff > 4 {
			t.Errorf("expx(%d) = %d, want ~%d", n, got, w)
		}
	}
}

func TestExpxNegativeIsReciprocal(t *testing.T) {
	pos := expx(2 * expOne)
	neg := expx(-2 * expOne)
	// neg should be close to expOne*expOne/pos (Q11 reciprocal)
	approxInv := expDiv(expOne, pos)
	diff := neg - approxInv
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 {
		t.Errorf("expx(-2) = %d, want ~%d (reciprocal of expx(2)=%d)", neg, approxInv, pos)
	}
}
