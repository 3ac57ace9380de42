package crt

type yiqSample struct {
	y, i, q int
}

// Decode demodulates the device's analog composite buffer back into the
// bound output raster. It injects noise, re-acquires vertical and
// horizontal sync, phase-locks to the color burst, demodulates Y/I/Q,
// converts to RGB, and blends each new pixel 50/50 with whatever was
// already in the output buffer (a rough approximation of phosphor
// persistence). Decode is safe to call every frame: all of its working
// state (sync position, burst reference, noise generator) lives on the
// Device and carries forward automatically.
func (d *Device) Decode() {
	geo := d.geom
	hres := geo.hres
	avLen := geo.avLen
	nes := d.kind.isNES()

	out := make([]yiqSample, avLen+1)

	var bright int
	if nes {
		bright = d.Brightness - geo.black
	} else {
		bright = d.Brightness - (geo.black + d.BlackPoint)
	}

	var ccref [4]int
	if nes {
		ccref = [4]int{d.ccf[0] << 7, d.ccf[1] << 7, d.ccf[2] << 7, d.ccf[3] << 7}
	}

	huesn, huecs := SinCos14(((d.Hue % 360) + 90) * 8192 / 180)
	huesn >>= 11
	huecs >>= 11

	for i := range d.analog {
		d.rng = 214019*d.rng + 140327895
		noise := ((int((d.rng>>16)&0xff) - 0x7f) * d.Noise) >> 8
		s := clamp(int(d.analog[i])+noise, -127, 127)
		d.inp[i] = int8(s)
	}

	// Vertical sync: integrate each candidate line until the running sum
	// drops below a threshold sized for that line's sync-pulse fraction.
	// Giving up and keeping the previous vsync line is a valid outcome,
	// not an error.
	var line, j int
	for i := -geo.vsyncWindow; i < geo.vsyncWindow; i++ {
		line = posmod(d.vsync+i, geo.vres)
		sig := d.inp[line*hres : (line+1)*hres]
		s := 0
		found := false
		for j = 0; j < hres; j++ {
			s += int(sig[j])
			if s <= geo.vsyncMul*geo.sync {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if d.DoVSync {
		d.vsync = line
	} else if nes {
		d.vsync = -3
	} else {
		d.vsync = 0
	}
	field := 0
	if j > hres/2 {
		field = 1
	}

	var maxE, prevE int
	if d.DoBloom {
		maxE = (128 + d.Noise/2) * avLen
		prevE = 16384 / 8
	}

	ratio := (d.outH << 16) / geo.lines
	ratio = (ratio + 32768) >> 16
	field = field * (ratio / 2)

	xnudge, ynudge := 0, 0
	if nes {
		xnudge, ynudge = -3, 3
	}

	for line := geo.top; line < geo.bot; line++ {
		beg := (line-geo.top+0)*d.outH/geo.lines + field
		end := (line-geo.top+1)*d.outH/geo.lines + field
		if beg >= d.outH {
			continue
		}
		if end > d.outH {
			end = d.outH
		}

		ln := posmod(line+d.vsync, geo.vres) * hres
		sig := d.inp[ln+d.hsync:]
		s := 0
		var i int
		for i = -geo.hsyncWindow; i < geo.hsyncWindow; i++ {
			s += int(sig[geo.syncBeg+i])
			if s <= 4*geo.sync {
				break
			}
		}
		if d.DoHSync {
			d.hsync = posmod(i+d.hsync, hres)
		} else if nes {
			d.hsync = 3
		} else {
			d.hsync = 0
		}

		sig = d.inp[ln+(d.hsync&^3):]
		for i := geo.cbBeg; i < geo.cbBeg+cbCycles*geo.cbFreq; i++ {
			prev := ccref[i&3] * 127 / 128
			ccref[i&3] = prev + int(sig[i])
		}

		var xpos, ypos int
		if nes {
			xpos = posmod(geo.ppuAVBeg+d.hsync+xnudge, hres)
			ypos = posmod(line+d.vsync+ynudge, geo.vres)
		} else {
			xpos = posmod(geo.avBeg+d.hsync, hres)
			ypos = posmod(line+d.vsync, geo.vres)
		}
		pos := xpos + ypos*hres
		phasealign := pos & 3

		dci := ccref[(phasealign+1)&3] - ccref[(phasealign+3)&3]
		dcq := ccref[(phasealign+2)&3] - ccref[(phasealign+0)&3]

		var wave [4]int
		wave[0] = ((dci*huecs - dcq*huesn) >> 4) * d.Saturation
		wave[1] = ((dcq*huecs + dci*huesn) >> 4) * d.Saturation
		wave[2] = -wave[0]
		wave[3] = -wave[1]

		sig = d.inp[pos:]

		var dx, scanL, scanR, lo, hi int
		if d.DoBloom {
			s := 0
			for i := 0; i < avLen; i++ {
				s += int(sig[i])
			}
			prevE = prevE*123/128 + (((maxE>>1 - s) << 10) / maxE)
			lineW := (avLen*112)/128 + (prevE >> 9)

			dx = (lineW << 12) / d.outW
			scanL = ((avLen/2)-(lineW>>1)+8) << 12
			scanR = (avLen - 1) << 12
			lo = scanL >> 12
			hi = scanR >> 12
		} else {
			dx = ((avLen - 1) << 12) / d.outW
			scanL = 0
			scanR = (avLen - 1) << 12
			lo = 0
			hi = avLen
		}

		resetEQ(&d.eqY)
		resetEQ(&d.eqI)
		resetEQ(&d.eqQ)

		for i := lo; i < hi; i++ {
			out[i].y = d.eqY.apply(int(sig[i])+bright) << 4
			out[i].i = d.eqI.apply(int(sig[i])*wave[(i+0)&3]>>9) >> 3
			out[i].q = d.eqQ.apply(int(sig[i])*wave[(i+3)&3]>>9) >> 3
		}

		rowStart := beg * d.outW
		rowEnd := rowStart + d.outW
		cur := rowStart
		for pos := scanL; pos < scanR && cur < rowEnd; pos += dx {
			rfrac := pos & 0xfff
			lfrac := 0xfff - rfrac
			s := pos >> 12

			yA, yB := out[s], out[s+1]
			y := (yA.y*lfrac)>>2 + (yB.y*rfrac)>>2
			ii := (yA.i*lfrac)>>14 + (yB.i*rfrac)>>14
			q := (yA.q*lfrac)>>14 + (yB.q*rfrac)>>14

			r := (((y + 3879*ii + 2556*q) >> 12) * d.Contrast) >> 8
			g := (((y - 1126*ii - 2605*q) >> 12) * d.Contrast) >> 8
			b := (((y - 4530*ii + 7021*q) >> 12) * d.Contrast) >> 8
			r = clamp(r, 0, 255)
			g = clamp(g, 0, 255)
			b = clamp(b, 0, 255)

			px := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
			prev := d.out[cur]
			d.out[cur] = ((px & 0xfefeff) >> 1) + ((prev & 0xfefeff) >> 1)
			cur++
		}

		for s := beg + 1; s < end; s++ {
			copy(d.out[s*d.outW:(s+1)*d.outW], d.out[(s-1)*d.outW:s*d.outW])
		}
	}
}
