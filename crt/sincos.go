package crt

// Fixed-point sine/cosine on a 14-bit turn: a full circle is T14Full units.
const (
	T14Full = 16384
	t14Mask = T14Full - 1
	T14Half = T14Full / 2
)

// sigpsin15 holds the significant points of one quadrant of the sine wave,
// 15-bit amplitude, sampled every 1/16th of the quadrant plus one extra
// wraparound entry used by the interpolator below.
var sigpsin15 = [18]int{
	0x0000,
	0x0c88, 0x18f8, 0x2528, 0x30f8, 0x3c50, 0x4718, 0x5130, 0x5a80,
	0x62f0, 0x6a68, 0x70e0, 0x7640, 0x7a78, 0x7d88, 0x7f60, 0x8000,
	0x7f60,
}

func sintabil8(n int) int {
	f := n >> 0 & 0xff
	i := n >> 8 & 0xff
	a := sigpsin15[i]
	b := sigpsin15[i+1]
	return a + ((b-a)*f >> 8)
}

// SinCos14 returns the 14-bit interpolated sine and cosine of the angle n,
// where n is expressed in 1/T14Full turns (n=T14Full is a full 2*pi turn).
func SinCos14(n int) (sin, cos int) {
	n &= t14Mask
	h := n & ((T14Full >> 1) - 1)

	if h > ((T14Full >> 2) - 1) {
		cos = -sintabil8(h - (T14Full >> 2))
		sin = sintabil8((T14Full >> 1) - h)
	} else {
		cos = sintabil8((T14Full >> 2) - h)
		sin = sintabil8(h)
	}
	if n > ((T14Full >> 1) - 1) {
		cos = -cos
		sin = -sin
	}
	return sin, cos
}
