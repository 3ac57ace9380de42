package crt

// Three-band equalizer, used by the decoder to split a channel into low,
// mid, and high bands (each with its own gain) and sum them back together.
// It is built from a cascade of one-pole filters rather than a true FIR/IIR
// bank because that is cheap enough to run per-sample per-scanline.
const (
	histLen = 3
	histOld = histLen - 1
	histNew = 0

	eqP = 16 // fixed point precision of the filter coefficients
	eqR = 1 << (eqP - 1)
)

type eqFilter struct {
	lf, hf int         // low/high cutoff fractions, Q16
	g      [3]int      // low/mid/high gains, Q16
	fL     [4]int       // low-pass cascade history
	fH     [4]int       // high-pass cascade history
	h      [histLen]int // raw input history
}

// initEQ derives the filter's cutoff fractions from a low and high cutoff
// frequency (both already expressed in samples/line units) at the given
// sample rate, and records the three band gains.
func initEQ(f *eqFilter, fLo, fHi, rate, gLo, gMid, gHi int) {
	*f = eqFilter{}
	f.g[0] = gLo
	f.g[1] = gMid
	f.g[2] = gHi

	shiftDown := 15 - eqP
	sn, _ := SinCos14(T14Half * fLo / rate)
	if eqP >= 15 {
		f.lf = 2 * (sn << (eqP - 15))
	} else {
		f.lf = 2 * (sn >> shiftDown)
	}
	sn, _ = SinCos14(T14Half * fHi / rate)
	if eqP >= 15 {
		f.hf = 2 * (sn << (eqP - 15))
	} else {
		f.hf = 2 * (sn >> shiftDown)
	}
}

func resetEQ(f *eqFilter) {
	f.fL = [4]int{}
	f.fH = [4]int{}
	f.h = [histLen]int{}
}

func (f *eqFilter) apply(s int) int {
	var r [3]int

	f.fL[0] += (f.lf*(s-f.fL[0]) + eqR) >> eqP
	f.fH[0] += (f.hf*(s-f.fH[0]) + eqR) >> eqP

	for i := 1; i < 4; i++ {
		f.fL[i] += (f.lf*(f.fL[i-1]-f.fL[i]) + eqR) >> eqP
		f.fH[i] += (f.hf*(f.fH[i-1]-f.fH[i]) + eqR) >> eqP
	}

	r[0] = f.fL[3]
	r[1] = f.fH[3] - f.fL[3]
	r[2] = f.h[histOld] - f.fH[3]

	for i := range r {
		r[i] = (r[i] * f.g[i]) >> eqP
	}

	for i := histOld; i > 0; i-- {
		f.h[i] = f.h[i-1]
	}
	f.h[histNew] = s

	return r[0] + r[1] + r[2]
}

// One-pole IIR lowpass used to bandlimit the encoded Y/I/Q channels.
type iirLowpass struct {
	c int // pole coefficient, Q11
	h int // history
}

// initIIR derives the pole coefficient from a total bandwidth and the
// frequency it should start attenuating at.
func initIIR(f *iirLowpass, freq, limit int) {
	*f = iirLowpass{}
	rate := (freq << 9) / limit
	f.c = expOne - expx(-((expPi << 9) / rate))
}

func resetIIR(f *iirLowpass) {
	f.h = 0
}

func (f *iirLowpass) apply(s int) int {
	f.h += expMul(s-f.h, f.c)
	return f.h
}
