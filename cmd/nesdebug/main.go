// Command nesdebug runs a cartridge image headlessly for a fixed number
// of frames and logs framebuffer and MMC3 bank state, for exercising the core
// outside of any display shell. ROM file parsing lives here, not in
// pkg/cartridge: the core only ever sees an already-decoded Config.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	flags "github.com/spf13/pflag"

	"github.com/saitounes/nescore/pkg/bus"
	"github.com/saitounes/nescore/pkg/cartridge"
	"github.com/saitounes/nescore/pkg/cartridge/mapper"
	"github.com/saitounes/nescore/pkg/nes"
)

var (
	frames    = flags.IntP("frames", "f", 10, "number of frames to run")
	palRegion = flags.Bool("pal", false, "run with PAL timing constants instead of NTSC")
	dumpFB    = flags.String("dump-framebuffer", "", "write the final frame's raw RGBA bytes to this path")
)

func main() {
	flags.CommandLine.AddGoFlagSet(flag.CommandLine)
	flags.Parse(os.Args[1:])
	defer glog.Flush()

	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nesdebug [flags] <rom-file>")
		os.Exit(2)
	}

	cfg, err := loadINES(flags.Arg(0))
	if err != nil {
		glog.Exitf("loading %s: %v", flags.Arg(0), err)
	}

	cart, err := cartridge.New(*cfg)
	if err != nil {
		glog.Exitf("building cartridge: %v", err)
	}

	region := bus.RegionNTSC
	if *palRegion {
		region = bus.RegionPAL
	}
	console := nes.New(region)
	console.LoadCartridge(cart)
	console.Reset()

	glog.Infof("loaded mapper %T, %d frames", cart.Mapper, *frames)

	start := time.Now()
	var fb []uint8
	for i := 0; i < *frames; i++ {
		console.StepFrame()
		fb = console.GetFramebuffer()
		if glog.V(1) {
			nonZero := 0
			for _, v := range fb {
				if v != 0 {
					nonZero++
				}
			}
			glog.Infof("frame %d: %d non-zero framebuffer bytes", console.Frame, nonZero)
		}
		if m4, ok := cart.Mapper.(*mapper.Mapper4); ok && glog.V(2) {
			glog.Infof("mapper4 PRG banks: %v", m4.GetCurrentPRGBanks())
		}
	}

	glog.Infof("ran %d frames in %v", *frames, time.Since(start))

	if *dumpFB != "" && fb != nil {
		if err := os.WriteFile(*dumpFB, fb, 0o644); err != nil {
			glog.Errorf("writing framebuffer dump: %v", err)
		}
	}
}

// iNESHeader is the 16-byte header this command decodes before handing
// cartridge.New an already-parsed Config; pkg/cartridge never sees it.
type iNESHeader struct {
	Magic      [4]uint8
	PRGROMSize uint8
	CHRROMSize uint8
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	_          [7]uint8
}

func loadINES(path string) (*cartridge.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var header iNESHeader
	if err := binary.Read(f, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if string(header.Magic[:]) != "NES\x1a" {
		return nil, fmt.Errorf("not an iNES file")
	}

	if header.Flags6&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, f, 512); err != nil {
			return nil, fmt.Errorf("skipping trainer: %w", err)
		}
	}

	prg := make([]uint8, int(header.PRGROMSize)*16384)
	if _, err := io.ReadFull(f, prg); err != nil {
		return nil, fmt.Errorf("reading PRG ROM: %w", err)
	}

	var chr []uint8
	if header.CHRROMSize > 0 {
		chr = make([]uint8, int(header.CHRROMSize)*8192)
		if _, err := io.ReadFull(f, chr); err != nil {
			return nil, fmt.Errorf("reading CHR ROM: %w", err)
		}
	}

	mirroring := cartridge.MirroringHorizontal
	switch {
	case header.Flags6&0x08 != 0:
		mirroring = cartridge.MirroringFourScreen
	case header.Flags6&0x01 != 0:
		mirroring = cartridge.MirroringVertical
	}

	cfg := &cartridge.Config{
		PRGROM:    prg,
		CHRROM:    chr,
		Mapper:    (header.Flags6 >> 4) | (header.Flags7 & 0xF0),
		Mirroring: mirroring,
	}
	if header.Flags6&0x02 != 0 {
		cfg.PRGRAMSize = 32768
	}
	return cfg, nil
}
