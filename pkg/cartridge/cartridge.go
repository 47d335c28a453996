// Package cartridge models cartridge address-space translation: PRG/CHR
// storage plus a mapper. ROM file parsing (iNES/NES 2.0) is an external
// collaborator's job, not this package's — Config carries already-decoded
// fields so callers can build a Cartridge from any source (a loaded ROM
// file, a generated test fixture, a mapper's own unit test).
package cartridge

import (
	"fmt"

	"github.com/saitounes/nescore/pkg/cartridge/mapper"
)

// MirroringMode represents the mirroring mode
type MirroringMode int

const (
	MirroringHorizontal MirroringMode = iota
	MirroringVertical
	MirroringFourScreen
	MirroringSingleScreenA
	MirroringSingleScreenB
)

// Config describes a decoded cartridge image: the fields an iNES/NES 2.0
// header (or any other source) would supply, already parsed.
type Config struct {
	PRGROM []uint8
	CHRROM []uint8 // empty means CHR-RAM; see CHRRAMSize

	PRGRAMSize int // 0 if the board has no battery-backed/work RAM
	CHRRAMSize int // used only when CHRROM is empty

	Mapper    uint8
	SubMapper uint8 // NES 2.0 submapper, passed through for boards that need it (e.g. MMC1 variants)
	Mirroring MirroringMode
}

// Cartridge represents a NES cartridge: decoded ROM/RAM storage routed
// through a mapper.
type Cartridge struct {
	PRGROM []uint8
	CHRROM []uint8
	PRGRAM []uint8
	CHRRAM []uint8

	Mapper    mapper.Mapper
	Mirroring MirroringMode
	SubMapper uint8
}

// New builds a Cartridge from a decoded configuration and constructs the
// mapper named by cfg.Mapper.
func New(cfg Config) (*Cartridge, error) {
	cart := &Cartridge{
		PRGROM:    cfg.PRGROM,
		CHRROM:    cfg.CHRROM,
		Mirroring: cfg.Mirroring,
		SubMapper: cfg.SubMapper,
	}

	if cfg.PRGRAMSize > 0 {
		cart.PRGRAM = make([]uint8, cfg.PRGRAMSize)
	}
	if len(cfg.CHRROM) == 0 {
		size := cfg.CHRRAMSize
		if size == 0 {
			size = 8192
		}
		cart.CHRRAM = make([]uint8, size)
	}

	mapperData := &mapper.CartridgeData{
		PRGROM: cart.PRGROM,
		CHRROM: cart.CHRROM,
		PRGRAM: cart.PRGRAM,
		CHRRAM: cart.CHRRAM,
	}

	m, err := mapper.NewMapper(cfg.Mapper, mapperData)
	if err != nil {
		return nil, fmt.Errorf("building cartridge: %w", err)
	}
	cart.Mapper = m

	return cart, nil
}

// ReadPRG reads from PRG space
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	if c.Mapper != nil {
		return c.Mapper.ReadPRG(addr)
	}
	return 0
}

// WritePRG writes to PRG space
func (c *Cartridge) WritePRG(addr uint16, value uint8) {
	if c.Mapper != nil {
		c.Mapper.WritePRG(addr, value)
	}
}

// WritePRGAt writes to PRG space with the originating CPU cycle attached.
// Only MMC1 (Mapper1) cares about this: its serial port drops the second of
// two writes landing within a few cycles of each other, a quirk triggered by
// read-modify-write instructions that write to the same address twice on
// consecutive cycles. Every other mapper ignores the cycle and behaves
// exactly as WritePRG.
func (c *Cartridge) WritePRGAt(addr uint16, value uint8, cycle uint64) {
	if c.Mapper == nil {
		return
	}
	if m1, ok := c.Mapper.(*mapper.Mapper1); ok {
		m1.WritePRGAt(addr, value, cycle)
		return
	}
	c.Mapper.WritePRG(addr, value)
}

// ReadCHR reads from CHR space
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	if c.Mapper != nil {
		return c.Mapper.ReadCHR(addr)
	}
	return 0
}

// WriteCHR writes to CHR space
func (c *Cartridge) WriteCHR(addr uint16, value uint8) {
	if c.Mapper != nil {
		c.Mapper.WriteCHR(addr, value)
	}
}

// Step steps the mapper (for mappers with scanline-timed IRQ)
func (c *Cartridge) Step() {
	if c.Mapper != nil {
		c.Mapper.Step()
	}
}

// IsIRQPending returns whether mapper IRQ is pending
func (c *Cartridge) IsIRQPending() bool {
	if c.Mapper != nil {
		return c.Mapper.IsIRQPending()
	}
	return false
}

// ClearIRQ clears mapper IRQ
func (c *Cartridge) ClearIRQ() {
	if c.Mapper != nil {
		c.Mapper.ClearIRQ()
	}
}

// NotifyA12 notifies the mapper of A12 line state for MMC3 IRQ timing
func (c *Cartridge) NotifyA12(chrAddr uint16, renderingEnabled bool) {
	if mapper4, ok := c.Mapper.(*mapper.Mapper4); ok {
		mapper4.NotifyA12(chrAddr, renderingEnabled)
	}
}

// GetMirroring returns the current mirroring mode in the PPU's encoding
// (0=horizontal, 1=vertical, 2=four-screen, 3=single-screen lower,
// 4=single-screen upper); a mapper that can change mirroring dynamically
// (MMC1, MMC3) overrides the header/config value.
func (c *Cartridge) GetMirroring() int {
	if m, ok := c.Mapper.(interface{ GetMirroringMode() uint8 }); ok {
		return int(m.GetMirroringMode())
	}

	switch c.Mirroring {
	case MirroringHorizontal:
		return 0
	case MirroringVertical:
		return 1
	case MirroringFourScreen:
		return 2
	case MirroringSingleScreenA:
		return 3
	case MirroringSingleScreenB:
		return 4
	default:
		return 0
	}
}
