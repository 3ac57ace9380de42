package transport

import (
	"fmt"
	"log"

	rtl "github.com/jpoirier/gortlsdr"

	"ntsccrt/crt"
)

// RTLSDRSource captures raw RTL-SDR I/Q samples and feeds their magnitude
// into a Device's analog buffer ahead of Decode, the same AM-envelope
// approach rtl_tv's Decoder uses, but writing directly into the shared
// fixed-point buffer instead of re-deriving sync timing by hand.
type RTLSDRSource struct {
	dongle *rtl.Context
	dvc    *crt.Device
	buf    []byte
}

// OpenRTLSDRSource opens device index idx, tunes it to freqHz, and sets a
// manual tuner gain (tenths of a dB, matching rtl_tv/main.go's convention).
func OpenRTLSDRSource(dvc *crt.Device, idx int, freqHz int, sampleRateHz int, gainTenthsDB int) (*RTLSDRSource, error) {
	count := rtl.GetDeviceCount()
	if count == 0 {
		return nil, fmt.Errorf("no RTL-SDR devices found")
	}

	dongle, err := rtl.Open(idx)
	if err != nil {
		return nil, fmt.Errorf("rtl.Open(%d): %w", idx, err)
	}
	if err := dongle.SetCenterFreq(freqHz); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetCenterFreq: %w", err)
	}
	if err := dongle.SetSampleRate(sampleRateHz); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetSampleRate: %w", err)
	}
	if err := dongle.SetTunerGainMode(false); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetTunerGainMode: %w", err)
	}
	if err := dongle.SetTunerGain(gainTenthsDB); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetTunerGain: %w", err)
	}
	if err := dongle.ResetBuffer(); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("ResetBuffer: %w", err)
	}

	log.Printf("tuned to %.3f MHz, sample rate %.3f MHz, gain %.1f dB", float64(freqHz)/1e6, float64(sampleRateHz)/1e6, float64(gainTenthsDB)/10.0)

	return &RTLSDRSource{
		dongle: dongle,
		dvc:    dvc,
		buf:    make([]byte, rtl.DefaultBufLength),
	}, nil
}

// FillAnalogBuffer reads one buffer's worth of I/Q samples and writes their
// AM-envelope magnitude into the Device's analog composite buffer, wrapping
// around as needed to fill exactly one field. Decode should be called with
// Device.Noise left at 0 in this path: the capture already carries real
// channel noise, so re-injecting synthetic noise on top would double it.
func (r *RTLSDRSource) FillAnalogBuffer() error {
	n, err := r.dongle.ReadSync(r.buf, len(r.buf))
	if err != nil {
		return fmt.Errorf("ReadSync: %w", err)
	}
	if n != len(r.buf) {
		return fmt.Errorf("short read: got %d of %d bytes", n, len(r.buf))
	}

	analog := r.dvc.AnalogBuffer()
	samples := n / 2
	for i := 0; i < samples && i < len(analog); i++ {
		iSample := int(r.buf[i*2]) - 127
		qSample := int(r.buf[i*2+1]) - 127
		mag := (iSample*iSample + qSample*qSample) >> 8
		if mag > 127 {
			mag = 127
		}
		analog[i] = int8(mag - 64)
	}
	return nil
}

// Close releases the RTL-SDR device.
func (r *RTLSDRSource) Close() {
	r.dongle.Close()
}
