package bus

import (
	"testing"

	"github.com/saitounes/nescore/pkg/cartridge"
	"github.com/saitounes/nescore/pkg/cpu"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	b := New(RegionNTSC)
	c := cpu.New(b)
	b.AttachCPU(c)

	cart, err := cartridge.New(cartridge.Config{
		PRGROM: make([]uint8, 32768),
		Mapper: 0,
	})
	if err != nil {
		t.Fatalf("building test cartridge: %v", err)
	}
	b.LoadCartridge(cart)
	b.Reset()
	c.Reset()
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)

	b.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42", mirror, got)
		}
	}
}

func TestOAMDMAStallsOAMDMACycleCount(t *testing.T) {
	b := newTestBus(t)

	b.RAM[0x100] = 0xAA // page $01, byte 0

	before := b.CPU.Cycles
	startedOnOddCycle := b.cycles%2 != 0
	b.performOAMDMA(0x01)
	elapsed := int(b.CPU.Cycles - before)

	want := 513
	if startedOnOddCycle {
		want = 514
	}
	if elapsed != want {
		t.Errorf("OAM DMA took %d CPU cycles, want %d", elapsed, want)
	}
}

func TestNMIIsEdgeTriggeredNotLevel(t *testing.T) {
	b := newTestBus(t)

	b.PPU.NMIRequested = true
	b.Tick()

	if !b.PollNMI() {
		t.Fatal("expected pending NMI after latch")
	}
	if b.PollNMI() {
		t.Error("NMI should be consumed by the first PollNMI, not still pending")
	}
}

func TestIRQLineAggregatesMapperAndAPU(t *testing.T) {
	b := newTestBus(t)

	if b.IRQLine() {
		t.Fatal("IRQ line should be clear with no source asserting")
	}

	b.APU.FrameIRQ = true
	if !b.IRQLine() {
		t.Error("IRQ line should reflect APU frame IRQ")
	}
	b.APU.FrameIRQ = false

	if b.IRQLine() {
		t.Error("IRQ line should clear once the asserting source clears")
	}
}

func TestTickAdvancesPPUThreeTimesPerCPUCycle(t *testing.T) {
	b := newTestBus(t)

	before := b.PPU.Cycle
	beforeScanline := b.PPU.Scanline
	b.Tick()
	after := b.PPU.Cycle

	advanced := after - before
	if advanced < 0 {
		advanced += 341 // one PPU scanline's worth of dots, if Cycle wrapped
	}
	if b.PPU.Scanline == beforeScanline && advanced != 3 {
		t.Errorf("PPU advanced %d dots in one Tick, want 3", advanced)
	}
}
