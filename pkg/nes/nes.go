// Package nes assembles a complete console out of pkg/cpu, pkg/ppu,
// pkg/apu, pkg/cartridge, and pkg/bus, and drives it one CPU instruction
// at a time.
package nes

import (
	"github.com/saitounes/nescore/pkg/apu"
	"github.com/saitounes/nescore/pkg/bus"
	"github.com/saitounes/nescore/pkg/cartridge"
	"github.com/saitounes/nescore/pkg/cpu"
	"github.com/saitounes/nescore/pkg/input"
	"github.com/saitounes/nescore/pkg/ppu"
)

// NES is a complete console: CPU, PPU, APU, and bus ticking in lockstep.
// Unlike the catch-up model this replaces, PPU and APU no longer run in a
// batch after each instruction — Bus.Tick drives them one cycle at a time
// from inside the CPU's own fetch/read/write sequence, so mid-instruction
// register reads see exactly the PPU/APU state real hardware would show.
type NES struct {
	CPU       *cpu.CPU
	PPU       *ppu.PPU
	APU       *apu.APU
	Bus       *bus.Bus
	Cartridge *cartridge.Cartridge

	Frame  uint64
	Cycles uint64
}

// New creates a console for the given timing region with no cartridge
// loaded; call LoadCartridge then Reset before stepping it.
func New(region bus.Region) *NES {
	b := bus.New(region)
	c := cpu.New(b)
	b.AttachCPU(c)

	return &NES{
		CPU: c,
		PPU: b.PPU,
		APU: b.APU,
		Bus: b,
	}
}

// NewNTSC is a convenience constructor for the common case.
func NewNTSC() *NES {
	return New(bus.RegionNTSC)
}

// LoadCartridge installs a cartridge on the bus.
func (n *NES) LoadCartridge(cart *cartridge.Cartridge) {
	n.Cartridge = cart
	n.Bus.LoadCartridge(cart)
}

// Reset resets every component and loads the CPU's program counter from
// the reset vector.
func (n *NES) Reset() {
	n.Bus.Reset()
	n.CPU.Reset()
	n.Frame = 0
	n.Cycles = 0
}

// Step executes exactly one CPU instruction (ticking PPU/APU alongside it)
// and returns the number of CPU cycles it took.
func (n *NES) Step() int {
	cycles := n.CPU.Step()
	n.Cycles += uint64(cycles)
	return cycles
}

// StepFrame runs instructions until the PPU completes a frame.
func (n *NES) StepFrame() {
	const maxCyclesPerFrame = 50000 // generous guard against a runaway/jammed CPU

	cycles := 0
	for !n.PPU.FrameComplete {
		cycles += n.Step()
		if cycles > maxCyclesPerFrame {
			n.PPU.FrameComplete = true
			break
		}
	}
	n.PPU.FrameComplete = false
	n.Frame = n.PPU.Frame
}

// Controller returns the given port's controller (0 or 1).
func (n *NES) Controller(port int) *input.Controller {
	return n.Bus.Controllers[port]
}

// GetFramebuffer returns the current framebuffer as RGBA bytes.
func (n *NES) GetFramebuffer() []uint8 {
	return n.PPU.GetFramebuffer()
}

// GetFramebufferRaw returns the raw framebuffer as 32-bit ARGB pixels.
func (n *NES) GetFramebufferRaw() []uint32 {
	return n.PPU.FrameBuffer[:]
}
