package test

import (
	"testing"

	"github.com/saitounes/nescore/pkg/cartridge"
)

func TestCartridgeBuildsFromConfig(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0] = 0x42
	chr := make([]uint8, 8192)
	chr[0] = 0x55

	cart, err := cartridge.New(cartridge.Config{
		PRGROM:    prg,
		CHRROM:    chr,
		Mapper:    0,
		Mirroring: cartridge.MirroringHorizontal,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cart.Mapper == nil {
		t.Fatal("Mapper should not be nil")
	}
	if v := cart.ReadPRG(0x8000); v != 0x42 {
		t.Errorf("ReadPRG(0x8000) = %#02x, want 0x42", v)
	}
	if v := cart.ReadCHR(0x0000); v != 0x55 {
		t.Errorf("ReadCHR(0x0000) = %#02x, want 0x55", v)
	}
}

func TestCartridgeRejectsUnsupportedMapper(t *testing.T) {
	_, err := cartridge.New(cartridge.Config{
		PRGROM: make([]uint8, 16384),
		Mapper: 5,
	})
	if err == nil {
		t.Error("expected an error for an unsupported mapper number")
	}
}

func TestCartridgeMapperSelection(t *testing.T) {
	for _, mapperNum := range []uint8{0, 1, 2, 3, 4, 66} {
		cart, err := cartridge.New(cartridge.Config{
			PRGROM: make([]uint8, 32768),
			Mapper: mapperNum,
		})
		if err != nil {
			t.Errorf("mapper %d: unexpected error: %v", mapperNum, err)
			continue
		}
		if cart.Mapper == nil {
			t.Errorf("mapper %d: Mapper should not be nil", mapperNum)
		}
	}
}

func TestCartridgeMirroringPassthrough(t *testing.T) {
	cases := []struct {
		mirroring cartridge.MirroringMode
		want      int
	}{
		{cartridge.MirroringHorizontal, 0},
		{cartridge.MirroringVertical, 1},
	}
	for _, tc := range cases {
		cart, err := cartridge.New(cartridge.Config{
			PRGROM:    make([]uint8, 16384),
			Mapper:    0,
			Mirroring: tc.mirroring,
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := cart.GetMirroring(); got != tc.want {
			t.Errorf("GetMirroring() = %d, want %d", got, tc.want)
		}
	}
}

func TestCartridgeCHRRAMFallback(t *testing.T) {
	cart, err := cartridge.New(cartridge.Config{
		PRGROM:     make([]uint8, 16384),
		Mapper:     0,
		CHRRAMSize: 8192,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cart.WriteCHR(0x10, 0x99)
	if v := cart.ReadCHR(0x10); v != 0x99 {
		t.Errorf("CHR RAM round trip = %#02x, want 0x99", v)
	}
}
