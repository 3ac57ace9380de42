package crt

import "testing"

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5,0,10) = %d, want 5", got)
	}
	if got := clamp(-5, 0, 10); got != 0 {
		t.Errorf("clamp(-5,0,10) = %d, want 0", got)
	}
	if got := clamp(15, 0, 10); got != 10 {
		t.Errorf("clamp(15,0,10) = %d, want 10", got)
	}
}

func solidFrame(w, h int, rgb uint32) *RGBFrame {
	buf := make([]uint32, w*h)
	for i := range buf {
		buf[i] = rgb
	}
	return &RGBFrame{RGB: buf, W: w, H: h, AsColor: true, CC: PhaseRef(0), CCScale: 1}
}

func TestEncodeRGBFullscreenSyncPulseLevels(t *testing.T) {
	d, _ := newTestDevice(SystemNTSC, 64, 48)
	fr := solidFrame(64, 48, 0x00808080)
	d.EncodeRGBFullscreen(fr)

	// pick a non-equalizing, non-vsync line well inside the picture area
	line := d.geom.top + 5
	row := d.AnalogBuffer()[line*d.geom.hres : (line+1)*d.geom.hres]

	if int(row[0]) != d.geom.blank {
		t.Errorf("front porch sample = %d, want blank %d", row[0], d.geom.blank)
	}
	if int(row[d.geom.syncBeg]) != d.geom.sync {
		t.Errorf("hsync sample = %d, want sync %d", row[d.geom.syncBeg], d.geom.sync)
	}
}

func TestEncodeRGBFullscreenActiveVideoInRange(t *testing.T) {
	d, _ := newTestDevice(SystemNTSC, 64, 48)
	fr := solidFrame(64, 48, 0x00ffffff)
	d.EncodeRGBFullscreen(fr)

	for _, v := range d.AnalogBuffer() {
		iv := int(v)
		if iv < -128 || iv > 127 {
			t.Fatalf("analog sample out of int8 range: %d", iv)
		}
	}
}

func TestEncodeRGBRawRespectsFrameSize(t *testing.T) {
	d, _ := newTestDevice(SystemNTSC, 64, 48)
	fr := solidFrame(20, 10, 0x00404040)
	fr.Raw = true
	// must not panic indexing past fr.RGB bounds
	d.EncodeRGB(fr)
}

func TestEncodeNESBorderFillsActiveRegion(t *testing.T) {
	d, _ := newTestDevice(SystemNES, 256, 240)
	data := make([]uint16, 256*240)
	for i := range data {
		data[i] = 0x20 // arbitrary in-range NES color index
	}
	fr := &NESFrame{Data: data, W: 256, H: 240, BorderData: 0x0f, CC: PhaseRef(0), CCScale: 1}
	d.EncodeNES(fr)

	for _, v := range d.AnalogBuffer() {
		iv := int(v)
		if iv < -128 || iv > 127 {
			t.Fatalf("NES analog sample out of int8 range: %d", iv)
		}
	}
}

func TestSquareSampleNESZeroForUnusedHues(t *testing.T) {
	if got := squareSampleNES(0x0e, 0); got != 0 {
		t.Errorf("squareSampleNES(0x0e, 0) = %d, want 0", got)
	}
	if got := squareSampleNES(0x0f, 0); got != 0 {
		t.Errorf("squareSampleNES(0x0f, 0) = %d, want 0", got)
	}
}
