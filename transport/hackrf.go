// Package transport wires the codec's Device buffers to real SDR hardware:
// HackRF for transmit, RTL-SDR for receive.
package transport

import (
	"fmt"
	"log"

	"github.com/samuel/go-hackrf/hackrf"

	"ntsccrt/crt"
)

// HackRFSink streams a Device's analog composite buffer out over a HackRF
// as I/Q samples, one composite sample per I byte with Q held at zero —
// the same AM-like RF model the teacher's transmitter uses, minus its float
// amplitude conversion step, since the Device buffer is already signed
// 8-bit IRE-like samples.
type HackRFSink struct {
	dev    *hackrf.Device
	dvc    *crt.Device
	cursor int
}

// OpenHackRFSink initializes the HackRF library, opens the first device,
// and tunes/configures it for transmitting dvc's analog output.
func OpenHackRFSink(dvc *crt.Device, freqHz uint64, sampleRate float64, gain int) (*HackRFSink, error) {
	if err := hackrf.Init(); err != nil {
		return nil, fmt.Errorf("hackrf.Init: %w", err)
	}

	dev, err := hackrf.Open()
	if err != nil {
		hackrf.Exit()
		return nil, fmt.Errorf("hackrf.Open: %w", err)
	}

	if err := dev.SetFreq(freqHz); err != nil {
		dev.Close()
		hackrf.Exit()
		return nil, fmt.Errorf("SetFreq: %w", err)
	}
	if err := dev.SetSampleRate(sampleRate); err != nil {
		dev.Close()
		hackrf.Exit()
		return nil, fmt.Errorf("SetSampleRate: %w", err)
	}
	if err := dev.SetTXVGAGain(gain); err != nil {
		dev.Close()
		hackrf.Exit()
		return nil, fmt.Errorf("SetTXVGAGain: %w", err)
	}
	if err := dev.SetAmpEnable(false); err != nil {
		dev.Close()
		hackrf.Exit()
		return nil, fmt.Errorf("SetAmpEnable: %w", err)
	}

	log.Printf("transmitting on %.3f MHz (sample rate %.2f Msps, gain %d)", float64(freqHz)/1e6, sampleRate/1e6, gain)

	return &HackRFSink{dev: dev, dvc: dvc}, nil
}

// Start begins streaming dvc's analog buffer, looping it continuously.
// Start is non-blocking; the callback runs on the library's own goroutine.
func (s *HackRFSink) Start() error {
	return s.dev.StartTX(func(buf []byte) error {
		analog := s.dvc.AnalogBuffer()
		n := len(buf) / 2
		for i := 0; i < n; i++ {
			buf[i*2] = byte(analog[s.cursor])
			buf[i*2+1] = 0
			s.cursor++
			if s.cursor >= len(analog) {
				s.cursor = 0
			}
		}
		return nil
	})
}

// Close releases the HackRF device and library handle.
func (s *HackRFSink) Close() {
	s.dev.Close()
	hackrf.Exit()
}
