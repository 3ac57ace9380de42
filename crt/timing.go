package crt

// SystemKind selects which composite-signal geometry and encode path a
// Device uses. Each kind pins its own chroma-clocks-per-line count, carrier
// frequency, and decode search windows, replacing what upstream picks with
// a block of #ifdef'd macros at compile time.
type SystemKind int

const (
	// SystemNTSC is the generic RGB-source composite encoder: checkered
	// chroma pattern, four samples per chroma cycle.
	SystemNTSC SystemKind = iota
	// SystemNTSCVHS reuses the generic RGB encode path but bandlimits the
	// Y/I/Q channels to consumer VHS tape bandwidths before modulation.
	SystemNTSCVHS
	// SystemNES is the indexed-pixel NES PPU encoder: forced sawtooth
	// chroma pattern, three (or six in hi-res) samples per chroma cycle.
	SystemNES
)

func (k SystemKind) isNES() bool { return k == SystemNES }

// geometry holds every derived horizontal/vertical offset for one system's
// composite line layout, plus the decode search parameters that go with it.
// It is computed once, at Init/Resize, from the same nanosecond/PPU-pixel
// budgets the source C macros use — never hand-rolled per field.
type geometry struct {
	ccLine int // chroma clocks per line, x10 (2275 == 227.5)
	cbFreq int // carrier cycles per sample
	hres   int // horizontal resolution (samples per line)
	vres   int
	top    int
	bot    int
	lines  int

	// fpBeg and bpBeg complete the line partition (front porch, back porch)
	// but nothing downstream reads them; kept only so the partition they
	// document is whole and the ordering stays easy to check.
	fpBeg    int
	syncBeg  int
	bwBeg    int
	cbBeg    int
	bpBeg    int
	avBeg    int
	ppuAVBeg int // only meaningful for SystemNES
	avLen    int

	white, burst, black, blank, sync int

	hsyncWindow int
	vsyncWindow int
	vsyncMul    int // vsync-integration threshold multiplier
}

const cbCycles = 10 // color burst length, in carrier cycles

func newGeometry(kind SystemKind, hires bool) geometry {
	g := geometry{vres: 262, top: 21, bot: 261}
	g.lines = g.bot - g.top

	if kind.isNES() {
		const hb = 58     // PPU pixels of hblank before PS/LB/AV
		const lineLen = 9 + 25 + 4 + 15 + 5 + 1 + 15 + 256 + 11 // 341

		g.ccLine = 2273 // sawtooth: 227.3 cycles/line, forced for NES
		if hires {
			g.cbFreq = 6
		} else {
			g.cbFreq = 3
		}
		g.hres = g.ccLine * g.cbFreq / 10

		g.fpBeg = 0
		g.syncBeg = 9 * g.hres / lineLen
		g.bwBeg = (9 + 25) * g.hres / lineLen
		g.cbBeg = (9 + 25 + 4) * g.hres / lineLen
		g.bpBeg = (9 + 25 + 4 + 15) * g.hres / lineLen
		g.avBeg = hb * g.hres / lineLen
		g.ppuAVBeg = (hb + 1 + 15) * g.hres / lineLen
		g.avLen = 256 * g.hres / lineLen

		g.white, g.burst, g.black, g.blank, g.sync = 110, 30, 0, 0, -37
		g.hsyncWindow, g.vsyncWindow = 6, 6
		if hires {
			g.vsyncMul = 150
		} else {
			g.vsyncMul = 100
		}
		return g
	}

	const lineLen = 1500 + 4700 + 600 + 2500 + 1600 + 52600 // 63500 ns

	g.ccLine = 2275 // checkered: 227.5 cycles/line
	g.cbFreq = 4
	g.hres = g.ccLine * g.cbFreq / 10

	g.fpBeg = 0
	g.syncBeg = 1500 * g.hres / lineLen
	g.bwBeg = (1500 + 4700) * g.hres / lineLen
	g.cbBeg = (1500 + 4700 + 600) * g.hres / lineLen
	g.bpBeg = (1500 + 4700 + 600 + 2500) * g.hres / lineLen
	g.avBeg = (1500 + 4700 + 600 + 2500 + 1600) * g.hres / lineLen
	g.avLen = 52600 * g.hres / lineLen

	g.white, g.burst, g.black, g.blank, g.sync = 100, 20, 7, 0, -40
	g.hsyncWindow, g.vsyncWindow = 8, 8
	g.vsyncMul = 100
	return g
}

// ccPhase is the per-line chroma phase flip. Checkered chroma (the generic
// and VHS systems) reverses every other line because 227.5 is not an
// integer number of cycles per line; the NES's forced sawtooth pattern
// never flips.
func ccPhase(kind SystemKind, line int) int {
	if kind.isNES() {
		return 1
	}
	if line&1 != 0 {
		return -1
	}
	return 1
}

// PhaseRef returns one of the four canonical color-carrier reference waves
// used to seed NTSC_SETTINGS.CC / NES_NTSC_SETTINGS.CC, selected by a
// running phase_offset counter the way the reference CLI driver rotates
// the burst phase by one step every encoded frame.
func PhaseRef(offset int) [4]int {
	refs := [4][4]int{
		{0, 1, 0, -1},
		{1, 0, -1, 0},
		{0, -1, 0, 1},
		{-1, 0, 1, 0},
	}
	return refs[posmod(offset, 4)]
}
