// Package config parses the demo binary's command-line flags into a single
// settings struct, the way hacktvlive/config and rtl_tv/config each do for
// their half of the pipeline.
package config

import (
	"flag"
	"fmt"

	"ntsccrt/crt"
)

// Config holds every setting the demo CLI exposes.
type Config struct {
	Mode string // "tx" (encode + HackRF) or "rx" (RTL-SDR + decode)

	System string // "ntsc", "ntsc-vhs", or "nes"
	Hires  bool   // NES hi-res chroma sampling

	Frequency  float64 // MHz
	Bandwidth  float64 // MHz
	SampleRate float64 // Hz, derived from Bandwidth
	Gain       int
	Device     int // RTL-SDR device index

	Width, Height int
	Noise         int
}

// New populates a Config from the process's command-line flags.
func New() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.Mode, "mode", "tx", "tx (HackRF transmit) or rx (RTL-SDR receive)")
	flag.StringVar(&cfg.System, "system", "ntsc", "signal system: ntsc, ntsc-vhs, or nes")
	flag.BoolVar(&cfg.Hires, "hires", false, "NES hi-res chroma sampling (6 samples/cycle)")
	flag.Float64Var(&cfg.Frequency, "freq", 1280, "center frequency in MHz")
	flag.Float64Var(&cfg.Bandwidth, "bw", 1.5, "channel bandwidth in MHz")
	flag.IntVar(&cfg.Gain, "gain", 30, "TX VGA gain or RX tuner gain")
	flag.IntVar(&cfg.Device, "device", 0, "RTL-SDR device index (rx mode only)")
	flag.IntVar(&cfg.Width, "width", 640, "output raster width")
	flag.IntVar(&cfg.Height, "height", 480, "output raster height")
	flag.IntVar(&cfg.Noise, "noise", 0, "synthetic decode noise, 0-255 (tx mode ignores this)")
	flag.Parse()

	cfg.SampleRate = cfg.Bandwidth * 1_000_000
	return cfg
}

// SystemKind resolves the -system flag into the crt package's tagged
// variant, or returns an error for an unrecognized name.
func (c *Config) SystemKind() (crt.SystemKind, error) {
	switch c.System {
	case "ntsc":
		return crt.SystemNTSC, nil
	case "ntsc-vhs":
		return crt.SystemNTSCVHS, nil
	case "nes":
		return crt.SystemNES, nil
	default:
		return 0, fmt.Errorf("unrecognized system %q: want ntsc, ntsc-vhs, or nes", c.System)
	}
}
