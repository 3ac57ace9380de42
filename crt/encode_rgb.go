package crt

// RGBFrame describes one field of digital RGB source image to encode into
// the device's analog composite buffer.
type RGBFrame struct {
	RGB     []uint32 // packed 0x00RRGGBB, row-major W*H
	W, H    int
	Raw     bool // true: don't rescale to fill the active video region
	AsColor bool // false: monochrome (no burst, no chroma)
	Field   int  // 0 = even, 1 = odd
	CC      [4]int
	CCScale int
}

func (d *Device) paintSyncLines() {
	hres := d.geom.hres
	for n := 0; n < d.geom.vres; n++ {
		line := d.analog[n*hres : (n+1)*hres]
		t := 0
		switch {
		case n <= 3 || (n >= 7 && n <= 9):
			// equalizing pulses: small blips of sync, mostly blank
			for t < 4*hres/100 {
				line[t] = int8(d.geom.sync)
				t++
			}
			for t < 50*hres/100 {
				line[t] = int8(d.geom.blank)
				t++
			}
			for t < 54*hres/100 {
				line[t] = int8(d.geom.sync)
				t++
			}
			for t < 100*hres/100 {
				line[t] = int8(d.geom.blank)
				t++
			}
		case n >= 4 && n <= 6:
			even := [4]int{46, 50, 96, 100}
			odd := [4]int{4, 50, 96, 100}
			offs := even
			if d.field == 1 {
				offs = odd
			}
			for t < offs[0]*hres/100 {
				line[t] = int8(d.geom.sync)
				t++
			}
			for t < offs[1]*hres/100 {
				line[t] = int8(d.geom.blank)
				t++
			}
			for t < offs[2]*hres/100 {
				line[t] = int8(d.geom.sync)
				t++
			}
			for t < offs[3]*hres/100 {
				line[t] = int8(d.geom.blank)
				t++
			}
		default:
			for t < d.geom.syncBeg {
				line[t] = int8(d.geom.blank)
				t++
			}
			for t < d.geom.bwBeg {
				line[t] = int8(d.geom.sync)
				t++
			}
			for t < d.geom.avBeg {
				line[t] = int8(d.geom.blank)
				t++
			}
			if n < d.geom.top {
				for t < hres {
					line[t] = int8(d.geom.blank)
					t++
				}
			}
			if d.fieldAsColor {
				for t = d.geom.cbBeg; t < d.geom.cbBeg+cbCycles*d.geom.cbFreq; t++ {
					cb := d.fieldCC[(t+0)&3]
					line[t] = int8(d.geom.blank + (cb*d.geom.burst)/d.fieldCCScale)
				}
			}
		}
	}
}

// field-scoped scratch used by paintSyncLines, set just before calling it.
// Kept on Device (not passed as parameters) to mirror the line-painting
// loop's structure in the reference encoder, which reads the same settings
// struct throughout.
func (d *Device) setFieldScratch(fr *RGBFrame) {
	d.field = fr.Field & 1
	d.fieldAsColor = fr.AsColor
	d.fieldCC = fr.CC
	d.fieldCCScale = fr.CCScale
}

// EncodeRGB converts one field of an RGB raster into the analog composite
// buffer, blending each destination row from two adjacent source rows the
// way an interlaced or line-doubled source would appear on a real tube.
func (d *Device) EncodeRGB(fr *RGBFrame) {
	d.setFieldScratch(fr)

	destw := d.geom.avLen
	desth := (d.geom.lines * 64500) >> 16
	if fr.Raw {
		destw = fr.W
		desth = fr.H
		if destw > d.geom.avLen {
			destw = d.geom.avLen
		}
		if desth > (d.geom.lines*64500)>>16 {
			desth = (d.geom.lines * 64500) >> 16
		}
	}

	xo := d.geom.avBeg + 4 + (d.geom.avLen-destw)/2
	yo := d.geom.top + 4 + (d.geom.lines-desth)/2
	xo &^= 3

	d.paintSyncLines()

	for y := 0; y < desth; y++ {
		fieldOffset := (d.field*fr.H + desth) / desth / 2
		syA := (y*fr.H)/desth + fieldOffset
		syB := (y*fr.H+desth/2)/desth + fieldOffset
		if syA >= fr.H {
			syA = fr.H
		}
		if syB >= fr.H {
			syB = fr.H
		}
		syA *= fr.W
		syB *= fr.W

		resetIIR(&d.iirY)
		resetIIR(&d.iirI)
		resetIIR(&d.iirQ)

		for x := 0; x < destw; x++ {
			sx := (x * fr.W) / destw
			pA := fr.RGB[sx+syA]
			pB := fr.RGB[sx+syB]
			rA, gA, bA := int(pA>>16&0xff), int(pA>>8&0xff), int(pA&0xff)
			rB, gB, bB := int(pB>>16&0xff), int(pB>>8&0xff), int(pB&0xff)

			fy := (19595*rA + 38470*gA + 7471*bA + 19595*rB + 38470*gB + 7471*bB) >> 15
			fi := (39059*rA - 18022*gA - 21103*bA + 39059*rB - 18022*gB - 21103*bB) >> 15
			fq := (13894*rA - 34275*gA + 20382*bA + 13894*rB - 34275*gB + 20382*bB) >> 15

			ph := ccPhase(d.kind, y+yo)
			ire := d.geom.black + d.BlackPoint

			fy = d.iirY.apply(fy)
			fi = d.iirI.apply(fi) * ph * fr.CC[(x+0)&3] / fr.CCScale
			fq = d.iirQ.apply(fq) * ph * fr.CC[(x+3)&3] / fr.CCScale
			ire += (fy + fi + fq) * (d.geom.white * d.WhitePoint / 100) >> 10
			ire = clamp(ire, 0, 110)

			d.analog[(x+xo)+(y+yo)*d.geom.hres] = int8(ire)
		}
	}
}

// EncodeRGBFullscreen converts one field of an RGB raster into the analog
// buffer without the two-row blend EncodeRGB performs, and stretches the
// image to fill the whole active video region instead of centering it at
// native size. It has no interlace artifacts, which makes it a better fit
// for rendering test patterns than the real EncodeRGB path.
func (d *Device) EncodeRGBFullscreen(fr *RGBFrame) {
	d.setFieldScratch(fr)

	destw := d.geom.avLen
	desth := d.geom.lines
	xo := d.geom.avBeg &^ 3
	yo := d.geom.top

	d.paintSyncLines()

	for y := 0; y < desth; y++ {
		fieldOffset := (d.field*fr.H + desth) / desth / 2
		sy := (y*fr.H)/desth + fieldOffset
		if sy >= fr.H {
			sy = fr.H
		}
		sy *= fr.W

		resetIIR(&d.iirY)
		resetIIR(&d.iirI)
		resetIIR(&d.iirQ)

		for x := 0; x < destw; x++ {
			sx := (x * fr.W) / destw
			pA := fr.RGB[sx+sy]
			rA, gA, bA := int(pA>>16&0xff), int(pA>>8&0xff), int(pA&0xff)

			fy := (19595*rA + 38470*gA + 7471*bA) >> 14
			fi := (39059*rA - 18022*gA - 21103*bA) >> 14
			fq := (13894*rA - 34275*gA + 20382*bA) >> 14

			ph := ccPhase(d.kind, y+yo)
			ire := d.geom.black + d.BlackPoint

			fy = d.iirY.apply(fy)
			fi = d.iirI.apply(fi) * ph * fr.CC[(x+0)&3] / fr.CCScale
			fq = d.iirQ.apply(fq) * ph * fr.CC[(x+3)&3] / fr.CCScale
			ire += (fy + fi + fq) * (d.geom.white * d.WhitePoint / 100) >> 10
			ire = clamp(ire, 0, 110)

			d.analog[(x+xo)+(y+yo)*d.geom.hres] = int8(ire)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
