package crt

// NESFrame describes one progressive frame of NES PPU pixel data to encode.
// Each element of Data is a 6-bit NES color index optionally OR'd with the
// 3-bit emphasis mask in bits 6-8, exactly as the PPU's internal pixel
// value is laid out.
type NESFrame struct {
	Data           []uint16
	W, H           int
	Raw            bool
	DotCrawlOffset int  // 0, 1, or 2: rotates the color-carrier phase
	DotSkipped     bool // true on odd rendered frames, where the PPU skips one dot
	BorderData     int  // NES pixel value painted into the border region
	CC             [4]int
	CCScale        int
}

// activeNESEmphasis are the per-phase-sextant bitmasks identifying which of
// the three emphasis bits (red/green/blue, 0x040/0x080/0x100 style) is
// active for that 60-degree slice of the color carrier.
var activeNESEmphasis = [6]int{0x0c0, 0x040, 0x140, 0x100, 0x180, 0x080}

// ireLevels precomputes the two candidate signal levels (low/high waveform
// half) and the emphasis-attenuated variant of each, per 64-entry NES
// palette index. Grounded on the dedicated Mesen-derived NES encoder's
// measured brightness levels (nesdev.org/wiki/NTSC_video#Brightness_Levels)
// rather than the simpler formulaic version the generic encoder uses for
// its own internal NES demo path.
var ireLevels = [2][2][64]int8{
	{ // waveform low
		{ // normal
			43, -12, -12, -12, -12, -12, -12, -12, -12, -12, -12, -12, -12, -12, 0, 0,
			74, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			110, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34, 0, 0,
			110, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 0, 0,
		},
		{ // attenuated
			26, -17, -17, -17, -17, -17, -17, -17, -17, -17, -17, -17, -17, -17, 0, 0,
			51, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, 0, 0,
			82, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 0, 0,
			82, 56, 56, 56, 56, 56, 56, 56, 56, 56, 56, 56, 56, 56, 0, 0,
		},
	},
	{ // waveform high
		{ // normal
			43, 43, 43, 43, 43, 43, 43, 43, 43, 43, 43, 43, 43, -12, 0, 0,
			74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 74, 0, 0, 0,
			110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 34, 0, 0,
			110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 80, 0, 0,
		},
		{ // attenuated
			26, 26, 26, 26, 26, 26, 26, 26, 26, 26, 26, 26, 26, -17, 0, 0,
			51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, -8, 0, 0,
			82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 19, 0, 0,
			82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 56, 0, 0,
		},
	},
}

func squareSampleNES(pixel, phase int) int {
	idx := pixel & 0x3f
	hue := idx & 0x0f
	if hue >= 0x0e {
		return 0
	}

	var level int
	switch hue {
	case 0:
		level = 1
	case 0x0d:
		level = 0
	default:
		if (hue+phase)%12 < 6 {
			level = 1
		} else {
			level = 0
		}
	}

	emphasis := 0
	if (pixel&0x1c0)&activeNESEmphasis[(phase>>1)%6] != 0 {
		emphasis = 1
	}

	return int(ireLevels[level][emphasis][idx])
}

func (g geometry) ppupx2pos(ppupx int) int {
	const linePPUpx = 9 + 25 + 4 + 15 + 5 + 1 + 15 + 256 + 11
	return ppupx * g.hres / linePPUpx
}

// EncodeNES converts one frame of NES PPU pixel data directly into the
// analog composite buffer, modeling the PPU's own 3-level square-wave
// subcarrier generation rather than going through an RGB/YIQ conversion.
func (d *Device) EncodeNES(fr *NESFrame) {
	g := d.geom
	hres := g.hres

	destw := g.avLen
	desth := g.lines
	if fr.Raw {
		destw = fr.W
		desth = fr.H
		if destw > g.avLen {
			destw = g.avLen
		}
		if desth > (g.lines*64500)>>16 {
			desth = (g.lines * 64500) >> 16
		}
	}

	xo := g.ppuAVBeg &^ 3
	yo := g.top

	var lo, po int
	if d.hires {
		switch fr.DotCrawlOffset % 3 {
		case 0:
			lo, po = 1, 3
		case 1:
			lo, po = 3, 1
		case 2:
			lo, po = 2, 0
		}
	} else {
		lo = fr.DotCrawlOffset % 3
		po = lo
		if lo == 1 {
			lo = 3
		}
	}

	phase := (1 + po) * 3

	for n := 0; n < g.vres; n++ {
		line := d.analog[n*hres : (n+1)*hres]
		t := 0
		if n >= 259 {
			for t < g.syncBeg {
				line[t] = int8(g.blank)
				t++
			}
			for t < g.ppupx2pos(327) {
				line[t] = int8(g.sync)
				t++
			}
			for t < hres {
				line[t] = int8(g.blank)
				t++
			}
			continue
		}

		for t < g.syncBeg {
			line[t] = int8(g.blank)
			t++
		}
		for t < g.bwBeg {
			line[t] = int8(g.sync)
			t++
		}
		for t < g.cbBeg {
			line[t] = int8(g.blank)
			t++
		}
		skipdot := 0
		if n == 14 && fr.DotSkipped {
			skipdot = g.ppupx2pos(1)
		}
		cbEnd := g.cbBeg + cbCycles*g.cbFreq - skipdot
		for t = g.cbBeg; t < cbEnd; t++ {
			cb := fr.CC[(t+po)&3]
			v := g.blank + (cb*g.burst)/fr.CCScale
			line[t] = int8(v)
			d.ccf[t&3] = v
		}
		for t < g.avBeg {
			line[t] = int8(g.blank)
			t++
		}
		phase += t * 3
		if n >= g.top && n <= g.bot+2 {
			for t < hres {
				p := fr.BorderData
				if t == g.avBeg {
					p = 0xf0
				}
				ire := squareSampleNES(p, phase+0) +
					squareSampleNES(p, phase+1) +
					squareSampleNES(p, phase+2) +
					squareSampleNES(p, phase+3)
				ire >>= 2
				line[t] = int8(ire)
				t++
				phase += 3
			}
		} else {
			for t < hres {
				line[t] = int8(g.blank)
				t++
			}
			phase += (hres - g.avBeg) * 3
		}
		phase %= 12
	}

	phase = 3
	for y := lo - 3; y < desth; y++ {
		sy := (y * fr.H) / desth
		if sy >= fr.H {
			sy = fr.H
		}
		if sy < 0 {
			sy = 0
		}
		sy *= fr.W
		phase += xo * 3
		for x := 0; x < destw; x++ {
			p := int(fr.Data[(x*fr.W)/destw+sy])
			ire := squareSampleNES(p, phase+0) +
				squareSampleNES(p, phase+1) +
				squareSampleNES(p, phase+2) +
				squareSampleNES(p, phase+3)
			ire >>= 2
			d.analog[(x+xo)+(y+yo)*hres] = int8(ire)
			phase += 3
		}
		phase = (phase + (hres-destw)*3) % 12
	}
}
