package crt

// Frequencies used to derive the filter bank, in Hz, relative to the
// 14.31818 MHz NTSC color subcarrier multiple that the whole signal is
// timed against.
const (
	lineFreq = 1431818 // full line (color subcarrier x4)
	yFreq    = 420000  // luma bandwidth,   4.2  MHz
	iFreq    = 150000  // chroma I bandwidth, 1.5  MHz
	qFreq    = 55000   // chroma Q bandwidth, 0.55 MHz
)

// Device holds all of the persistent state a single encode/decode pipeline
// needs across calls: the analog waveform buffer, the noisy copy of it the
// decoder actually reads, the sync/burst tracking the decoder carries from
// one Decode call to the next, and the adjustment knobs a real television
// would expose. These used to be a mix of struct fields and file-scope
// globals; here they all live on Device so nothing survives a call by
// accident and two Devices never share state.
type Device struct {
	Hue, Saturation, Brightness, Contrast int
	BlackPoint, WhitePoint                int
	Noise                                 int

	// DoVSync/DoHSync control whether Decode actively searches for sync
	// each call, or free-runs on its last known position. DoBloom enables
	// the beam-energy feedback that narrows the scan line width (and
	// darkens the picture edges) under a bright signal.
	DoVSync, DoHSync, DoBloom bool

	analog []int8
	inp    []int8

	hsync, vsync int
	ccf          [4]int // color burst samples handed from encode to decode

	rng int32 // noise LCG state, promoted from a function-local static

	outW, outH int
	out        []uint32

	kind  SystemKind
	hires bool
	geom  geometry

	eqY, eqI, eqQ    eqFilter
	iirY, iirI, iirQ iirLowpass

	// per-field encode scratch, set by setFieldScratch just before the
	// sync/burst line painter runs
	field          int
	fieldAsColor   bool
	fieldCC        [4]int
	fieldCCScale   int
}

// NewDevice creates a Device for the given system variant. Call Init before
// using it.
func NewDevice(kind SystemKind, hires bool) *Device {
	return &Device{kind: kind, hires: hires}
}

// Kind reports the system variant this device was created with.
func (d *Device) Kind() SystemKind { return d.kind }

// Hires reports whether this NES device encodes in hi-res (6 samples per
// chroma cycle) mode. Meaningless for non-NES systems.
func (d *Device) Hires() bool { return d.hires }

// Init allocates the signal buffers, binds the output image, and resets all
// filters and adjustment knobs to their defaults. w and h are the output
// raster's dimensions; out is the caller-owned backing store Decode writes
// into, packed 0x00RRGGBB per pixel.
func (d *Device) Init(w, h int, out []uint32) {
	d.geom = newGeometry(d.kind, d.hires)
	size := d.geom.hres * d.geom.vres
	d.analog = make([]int8, size)
	d.inp = make([]int8, size)
	d.ccf = [4]int{}
	d.rng = 194 // matches the reference 'random' noise seed

	d.Resize(w, h, out)
	d.Reset()

	kHz2L := func(kHz int) int { return d.geom.hres * (kHz * 100) / lineFreq }

	// Band gains are pre-scaled 16-bit fixed point; they only make sense
	// alongside eqP==16 in filter.go.
	initEQ(&d.eqY, kHz2L(1500), kHz2L(3000), d.geom.hres, 65536, 8192, 9175)
	initEQ(&d.eqI, kHz2L(80), kHz2L(1150), d.geom.hres, 65536, 65536, 1311)
	initEQ(&d.eqQ, kHz2L(80), kHz2L(1000), d.geom.hres, 65536, 65536, 0)

	yLimit, iLimit, qLimit := yFreq, iFreq, qFreq
	if d.kind == SystemNTSCVHS {
		// Consumer VHS SP tape bandwidth (2.4 MHz luma, 320 kHz chroma),
		// grounded on the SP/LP/EP split in the retrieved float-based
		// artifact simulator (VHS_SP{2400000, 320000}), rescaled by /10
		// to match this package's yFreq/iFreq/qFreq convention (actual Hz
		// / 10, same as lineFreq representing 14.31818 MHz).
		yLimit, iLimit, qLimit = 240000, 32000, 32000
	}
	initIIR(&d.iirY, lineFreq, yLimit)
	initIIR(&d.iirI, lineFreq, iLimit)
	initIIR(&d.iirQ, lineFreq, qLimit)
}

// Resize rebinds the output image without touching any other state.
func (d *Device) Resize(w, h int, out []uint32) {
	d.outW = w
	d.outH = h
	d.out = out
}

// Reset restores hue/saturation/brightness/contrast/black & white point and
// the sync trackers to their power-on defaults. It does not reallocate any
// buffers, so it is safe to call between frames.
func (d *Device) Reset() {
	d.Hue = 0
	d.Saturation = 18
	d.Brightness = 0
	if d.kind.isNES() {
		d.Contrast = 180
	} else {
		d.Contrast = 179
	}
	d.BlackPoint = 0
	d.WhitePoint = 100
	d.Noise = 0
	d.DoVSync = true
	d.DoHSync = true
	d.DoBloom = false
	d.hsync = 0
	d.vsync = 0
}

// AnalogBuffer exposes the raw composite waveform for the current frame,
// one signed 8-bit IRE-ish sample per element, row-major HRES*VRES. Mainly
// useful for transport layers that need to stream the waveform elsewhere.
func (d *Device) AnalogBuffer() []int8 { return d.analog }

// HRes and VRes report the device's current line/frame sample geometry.
func (d *Device) HRes() int { return d.geom.hres }
func (d *Device) VRes() int { return d.geom.vres }
