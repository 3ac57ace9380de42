package crt

import "testing"

func newTestDevice(kind SystemKind, w, h int) (*Device, []uint32) {
	d := NewDevice(kind, false)
	out := make([]uint32, w*h)
	d.Init(w, h, out)
	return d, out
}

func TestNewDeviceReportsKindAndHires(t *testing.T) {
	d := NewDevice(SystemNES, true)
	if d.Kind() != SystemNES {
		t.Errorf("Kind() = %v, want SystemNES", d.Kind())
	}
	if !d.Hires() {
		t.Errorf("Hires() = false, want true")
	}
}

func TestDeviceInitAllocatesBySystem(t *testing.T) {
	for _, kind := range []SystemKind{SystemNTSC, SystemNTSCVHS, SystemNES} {
		d, out := newTestDevice(kind, 320, 240)
		want := d.HRes() * d.VRes()
		if len(d.AnalogBuffer()) != want {
			t.Errorf("kind %v: AnalogBuffer len = %d, want %d", kind, len(d.AnalogBuffer()), want)
		}
		if len(out) != 320*240 {
			t.Errorf("kind %v: out buffer unexpectedly resized", kind)
		}
	}
}

func TestDeviceResetDefaults(t *testing.T) {
	d, _ := newTestDevice(SystemNTSC, 100, 100)
	d.Hue = 45
	d.Saturation = 99
	d.Noise = 20
	d.Reset()
	if d.Hue != 0 {
		t.Errorf("Hue after Reset = %d, want 0", d.Hue)
	}
	if d.Saturation != 18 {
		t.Errorf("Saturation after Reset = %d, want 18", d.Saturation)
	}
	if d.Contrast != 179 {
		t.Errorf("NTSC Contrast after Reset = %d, want 179", d.Contrast)
	}
	if d.Noise != 0 {
		t.Errorf("Noise after Reset = %d, want 0", d.Noise)
	}
	if !d.DoVSync || !d.DoHSync {
		t.Errorf("DoVSync/DoHSync after Reset = %v/%v, want true/true", d.DoVSync, d.DoHSync)
	}
	if d.DoBloom {
		t.Errorf("DoBloom after Reset = true, want false")
	}
}

func TestDeviceResetContrastByKind(t *testing.T) {
	nes, _ := newTestDevice(SystemNES, 100, 100)
	if nes.Contrast != 180 {
		t.Errorf("NES Contrast after Reset = %d, want 180", nes.Contrast)
	}
}

func TestDeviceResizeRebindsWithoutTouchingBuffers(t *testing.T) {
	d, _ := newTestDevice(SystemNTSC, 100, 100)
	analogBefore := d.AnalogBuffer()
	newOut := make([]uint32, 50*50)
	d.Resize(50, 50, newOut)
	if &d.AnalogBuffer()[0] != &analogBefore[0] {
		t.Errorf("Resize reallocated the analog buffer")
	}
}
