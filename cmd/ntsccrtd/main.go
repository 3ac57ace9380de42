// Command ntsccrtd demonstrates the codec end to end: tx mode renders a
// test-pattern raster, encodes it, and streams it out a HackRF; rx mode
// captures from an RTL-SDR, decodes, and prints a status panel.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ntsccrt/config"
	"ntsccrt/crt"
	"ntsccrt/transport"
	"ntsccrt/tui"
)

func main() {
	cfg := config.New()

	kind, err := cfg.SystemKind()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dvc := crt.NewDevice(kind, cfg.Hires)
	out := make([]uint32, cfg.Width*cfg.Height)
	dvc.Init(cfg.Width, cfg.Height, out)
	dvc.Noise = cfg.Noise

	switch cfg.Mode {
	case "tx":
		runTX(cfg, dvc)
	case "rx":
		runRX(cfg, dvc)
	default:
		log.Fatalf("unrecognized -mode %q: want tx or rx", cfg.Mode)
	}
}

func runTX(cfg *config.Config, dvc *crt.Device) {
	fr := testPatternFrame()
	if dvc.Kind() == crt.SystemNES {
		nesFr := testPatternNESFrame()
		dvc.EncodeNES(nesFr)
	} else {
		dvc.EncodeRGBFullscreen(fr)
	}

	sink, err := transport.OpenHackRFSink(dvc, uint64(cfg.Frequency*1_000_000), cfg.SampleRate, cfg.Gain)
	if err != nil {
		log.Fatalf("hackrf: %v", err)
	}
	defer sink.Close()

	if err := sink.Start(); err != nil {
		log.Fatalf("transmit failed: %v", err)
	}

	log.Println("transmitting; press Ctrl+C to stop")
	waitForInterrupt()
}

func runRX(cfg *config.Config, dvc *crt.Device) {
	src, err := transport.OpenRTLSDRSource(dvc, cfg.Device, int(cfg.Frequency*1_000_000), int(cfg.SampleRate), cfg.Gain*10)
	if err != nil {
		log.Fatalf("rtlsdr: %v", err)
	}
	defer src.Close()

	go func() {
		for {
			if err := src.FillAnalogBuffer(); err != nil {
				log.Printf("capture: %v", err)
				return
			}
			dvc.Decode()
		}
	}()

	model := tui.NewModel(dvc, 500*time.Millisecond)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

func waitForInterrupt() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("shutting down")
}

func testPatternFrame() *crt.RGBFrame {
	w, h := 320, 240
	buf := make([]uint32, w*h)
	bars := []uint32{0xffffff, 0xffff00, 0x00ffff, 0x00ff00, 0xff00ff, 0xff0000, 0x0000ff}
	barW := w / len(bars)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := x / barW
			if i >= len(bars) {
				i = len(bars) - 1
			}
			buf[y*w+x] = bars[i]
		}
	}
	return &crt.RGBFrame{RGB: buf, W: w, H: h, AsColor: true, CC: crt.PhaseRef(0), CCScale: 1}
}

func testPatternNESFrame() *crt.NESFrame {
	w, h := 256, 240
	data := make([]uint16, w*h)
	bars := []uint16{0x30, 0x27, 0x2a, 0x1a, 0x14, 0x06, 0x02}
	barW := w / len(bars)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := x / barW
			if i >= len(bars) {
				i = len(bars) - 1
			}
			data[y*w+x] = bars[i]
		}
	}
	return &crt.NESFrame{Data: data, W: w, H: h, BorderData: 0x0f, CC: crt.PhaseRef(0), CCScale: 1}
}
