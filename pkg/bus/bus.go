// Package bus wires the CPU, PPU, APU, cartridge, and controllers into a
// single NES memory map and is the only thing the CPU ever talks to. It
// satisfies cpu.Bus: every CPU cycle, real or dummy, calls Tick before the
// access it accompanies, which is what keeps PPU and APU timing locked to
// the CPU clock.
package bus

import (
	"github.com/saitounes/nescore/internal/trace"
	"github.com/saitounes/nescore/pkg/apu"
	"github.com/saitounes/nescore/pkg/cartridge"
	"github.com/saitounes/nescore/pkg/cpu"
	"github.com/saitounes/nescore/pkg/input"
	"github.com/saitounes/nescore/pkg/ppu"
)

// Region selects the console timing profile. Only NTSC is cycle-accurate;
// PAL carries its own CPU clock and frame-rate constants below, while the
// PPU stepping (3 dots per CPU cycle, 262 scanlines) is the same for both.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
)

// Per-region timing, used by callers that need wall-clock frame pacing
// (e.g. an audio resampler or a frame limiter); the Bus/PPU/CPU tick loop
// itself does not consume these directly.
const (
	NTSCCPUHz       = 1789773
	NTSCFramesPerSec = 60.0988
	PALCPUHz        = 1662607
	PALFramesPerSec = 50.007
)

// Bus implements cpu.Bus and owns the console's shared address space.
type Bus struct {
	Region Region

	RAM [2048]uint8

	CPU         *cpu.CPU
	PPU         *ppu.PPU
	APU         *apu.APU
	Cartridge   *cartridge.Cartridge
	Controllers [2]*input.Controller

	cycles uint64 // total ticks delivered, used for OAM DMA alignment

	nmiPending bool
	prevNMI    bool

	lastDMCFetchAddr uint16
	dmcFetchPrimed   bool
}

// New creates a Bus with fresh controllers and no cartridge loaded. Call
// AttachCPU once the CPU has been constructed with this Bus (the two have
// a necessary construction cycle: the CPU needs a Bus to exist, the Bus
// needs the CPU to exist so it can stall it during DMA).
func New(region Region) *Bus {
	b := &Bus{
		Region: region,
		PPU:    ppu.New(),
		APU:    apu.New(),
	}
	b.Controllers[0] = input.New()
	b.Controllers[1] = input.New()
	b.APU.SetMemory(b)
	return b
}

// AttachCPU completes construction. Must be called before any Tick.
func (b *Bus) AttachCPU(c *cpu.CPU) {
	b.CPU = c
}

// LoadCartridge installs a cartridge and wires it into the PPU for CHR
// access and mapper-IRQ/A12 notification.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.Cartridge = cart
	b.PPU.SetCartridge(cart)
}

// Reset clears RAM and resets every owned component. The CPU is reset by
// its own owner, not here, since Bus does not assume CPU construction order.
func (b *Bus) Reset() {
	b.RAM = [2048]uint8{}
	b.PPU.Reset()
	b.APU.Reset()
	b.cycles = 0
	b.nmiPending = false
	b.prevNMI = false
	b.dmcFetchPrimed = false
}

// Tick advances the PPU three dots and the APU one cycle, and must be
// called exactly once per CPU cycle before that cycle's memory access.
func (b *Bus) Tick() {
	b.cycles++

	for i := 0; i < 3; i++ {
		b.PPU.Step()
	}
	b.latchNMI()

	dmcAddrBefore := b.APU.DMC.CurrentAddress
	dmcWasEmpty := b.APU.DMC.BufferEmpty
	b.APU.Step()
	if dmcWasEmpty && !b.APU.DMC.BufferEmpty && b.APU.DMC.CurrentAddress != dmcAddrBefore {
		// A sample byte was just pulled in. Real hardware steals up to 4
		// CPU cycles for this; we charge the conservative maximum rather
		// than track the exact 1-4 cycle variant, which depends on
		// whether the stolen cycle lands on a read, write, or RDY-stall
		// boundary that would need a full bus-arbitration model to get right.
		b.CPU.Stall(4)
	}
}

// latchNMI turns the PPU's level-style NMIRequested flag into a proper
// edge: it fires PollNMI exactly once per VBlank entry, matching real
// 2A03/2C02 behavior where the CPU samples an edge-detected NMI line.
func (b *Bus) latchNMI() {
	if b.PPU.NMIRequested {
		b.nmiPending = true
		b.PPU.NMIRequested = false
	}
}

// PollNMI implements cpu.Bus.
func (b *Bus) PollNMI() bool {
	v := b.nmiPending
	b.nmiPending = false
	return v
}

// IRQLine implements cpu.Bus: the shared line is high if the mapper or the
// APU (frame sequencer or DMC) is asserting it.
func (b *Bus) IRQLine() bool {
	mapperIRQ := b.Cartridge != nil && b.Cartridge.IsIRQPending()
	return mapperIRQ || b.APU.IRQPending()
}

// Read implements cpu.Bus and apu.MemoryReader (for DMC sample fetches).
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x7FF]
	case addr < 0x4000:
		return b.PPU.ReadRegister(0x2000 + (addr & 0x7))
	case addr == 0x4015:
		return b.APU.ReadRegister(addr)
	case addr == 0x4016:
		return b.Controllers[0].Read()
	case addr == 0x4017:
		return b.Controllers[1].Read()
	case addr < 0x4020:
		return b.APU.ReadRegister(addr)
	case b.Cartridge != nil:
		return b.Cartridge.ReadPRG(addr)
	default:
		return 0
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x7FF] = value
	case addr < 0x4000:
		b.PPU.WriteRegister(0x2000+(addr&0x7), value)
	case addr == 0x4014:
		b.performOAMDMA(value)
	case addr == 0x4016:
		// Writing $4016 strobes both controller shift registers; writes
		// to $4017 go to the APU frame counter, so controller 2 latches
		// off the same $4016 strobe as controller 1 on real hardware.
		b.Controllers[0].Write(value)
		b.Controllers[1].Write(value)
	case addr < 0x4020:
		b.APU.WriteRegister(addr, value)
	case b.Cartridge != nil:
		b.Cartridge.WritePRGAt(addr, value, b.cycles)
	}
}

// performOAMDMA copies page*$100..page*$100+$FF into OAM, stalling the CPU
// for 513 cycles (514 if the transfer starts on an odd CPU cycle) exactly
// as the 2A03's DMA controller does.
func (b *Bus) performOAMDMA(page uint8) {
	trace.CPU(trace.LevelDebug).Infof("OAM DMA from page $%02X00", page)

	b.CPU.Stall(1) // the halt cycle that is always spent
	if b.cycles%2 != 0 {
		b.CPU.Stall(1) // extra alignment cycle when triggered on an odd cycle
	}

	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		value := b.Read(base + uint16(i))
		b.CPU.Stall(1)
		b.PPU.WriteRegister(0x2004, value)
		b.CPU.Stall(1)
	}
}
