package crt

import "testing"

func TestDecodeProducesInRangeRGB(t *testing.T) {
	d, out := newTestDevice(SystemNTSC, 64, 48)
	fr := solidFrame(64, 48, 0x00c08040)
	d.EncodeRGBFullscreen(fr)

	d.Decode()

	for _, px := range out {
		if px&0xff000000 != 0 {
			t.Fatalf("decoded pixel has stray high bits: %#08x", px)
		}
	}
}

func TestDecodeVSyncGiveUpKeepsPreviousLine(t *testing.T) {
	d, out := newTestDevice(SystemNTSC, 64, 48)
	fr := solidFrame(64, 48, 0x00202020)
	d.EncodeRGBFullscreen(fr)

	d.DoVSync = false
	prevVsync := d.vsync
	d.Decode()
	if d.vsync != prevVsync {
		t.Errorf("vsync changed to %d despite DoVSync=false, want unchanged %d", d.vsync, prevVsync)
	}
	_ = out
}

func TestDecodeIsRepeatable(t *testing.T) {
	d, out := newTestDevice(SystemNTSC, 32, 24)
	fr := solidFrame(32, 24, 0x00ff8000)
	d.EncodeRGBFullscreen(fr)

	d.Decode()
	first := append([]uint32(nil), out...)
	d.Decode()

	for i := range out {
		diff := int(first[i]&0xff) - int(out[i]&0xff)
		if diff < -4 || diff > 4 {
			t.Fatalf("pixel %d drifted more than expected across repeated decodes: %#08x -> %#08x", i, first[i], out[i])
		}
	}
}

func TestDecodeNESVariantDoesNotPanic(t *testing.T) {
	d, out := newTestDevice(SystemNES, 256, 240)
	data := make([]uint16, 256*240)
	for i := range data {
		data[i] = 0x30
	}
	fr := &NESFrame{Data: data, W: 256, H: 240, BorderData: 0x0f, CC: PhaseRef(0), CCScale: 1}
	d.EncodeNES(fr)
	d.Decode()
	_ = out
}
