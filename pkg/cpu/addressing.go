package cpu

// resolveOperand decodes the operand for the given opcode, consuming
// exactly the bus cycles real hardware would for fetch bytes and the
// dummy reads particular to indexed modes, and returns the effective
// address (meaningless for Implied/Accumulator/Immediate, where execute
// uses c.A or reads directly from PC).
func (c *CPU) resolveOperand(info OpcodeInfo) uint16 {
	switch info.Mode {
	case AddrImplied, AddrAccumulator:
		return 0

	case AddrImmediate:
		addr := c.PC
		c.PC++
		return addr

	case AddrZeroPage:
		return uint16(c.fetch())

	case AddrZeroPageX:
		base := c.fetch()
		c.readTick(uint16(base)) // dummy read of unindexed base, every zp,X access
		return uint16(base + c.X)

	case AddrZeroPageY:
		base := c.fetch()
		c.readTick(uint16(base))
		return uint16(base + c.Y)

	case AddrAbsolute:
		return c.fetchWord()

	case AddrAbsoluteX:
		return c.resolveAbsoluteIndexed(c.X, info)

	case AddrAbsoluteY:
		return c.resolveAbsoluteIndexed(c.Y, info)

	case AddrIndirect:
		ptr := c.fetchWord()
		// JMP ($xxFF) bug: the high byte wraps within the same page.
		lo := c.readTick(ptr)
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := c.readTick(hiAddr)
		return uint16(hi)<<8 | uint16(lo)

	case AddrIndexedIndirectX:
		zp := c.fetch()
		c.readTick(uint16(zp)) // dummy read of unindexed base
		ptr := zp + c.X
		lo := c.readTick(uint16(ptr))
		hi := c.readTick(uint16(ptr + 1))
		return uint16(hi)<<8 | uint16(lo)

	case AddrIndirectIndexedY:
		zp := c.fetch()
		lo := c.readTick(uint16(zp))
		hi := c.readTick(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		crossed := (base & 0xFF00) != (addr & 0xFF00)
		if crossed {
			wrong := (base & 0xFF00) | (addr & 0x00FF)
			c.readTick(wrong)
		} else if isWriteOrRMW(info.Mnemonic) {
			c.readTick(addr)
		}
		return addr

	case AddrRelative:
		offset := int8(c.fetch())
		return uint16(int32(c.PC) + int32(offset))
	}
	return 0
}

func (c *CPU) resolveAbsoluteIndexed(index uint8, info OpcodeInfo) uint16 {
	base := c.fetchWord()
	addr := base + uint16(index)
	crossed := (base & 0xFF00) != (addr & 0xFF00)
	if crossed {
		wrong := (base & 0xFF00) | (addr & 0x00FF)
		c.readTick(wrong)
	} else if isWriteOrRMW(info.Mnemonic) {
		c.readTick(addr)
	}
	return addr
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// isWriteOrRMW reports whether an instruction always performs a dummy
// read at the effective address of an indexed mode, independent of
// whether indexing crossed a page — true for stores and read-modify-write
// instructions, which real hardware always accesses the address twice.
func isWriteOrRMW(m Mnemonic) bool {
	switch m {
	case mnSTA, mnSTX, mnSTY,
		mnASL, mnLSR, mnROL, mnROR, mnINC, mnDEC,
		mnSLO, mnRLA, mnSRE, mnRRA, mnDCP, mnISB,
		mnSHX, mnSHY, mnAHX, mnTAS:
		return true
	}
	return false
}
