package cpu

// AddressingMode identifies one of the 6502's addressing modes.
type AddressingMode uint8

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect
	AddrIndexedIndirectX // (zp,X)
	AddrIndirectIndexedY // (zp),Y
	AddrRelative
)

// Mnemonic identifies the operation a given opcode byte performs,
// independent of addressing mode.
type Mnemonic uint8

const (
	mnADC Mnemonic = iota
	mnAND
	mnASL
	mnBCC
	mnBCS
	mnBEQ
	mnBIT
	mnBMI
	mnBNE
	mnBPL
	mnBRK
	mnBVC
	mnBVS
	mnCLC
	mnCLD
	mnCLI
	mnCLV
	mnCMP
	mnCPX
	mnCPY
	mnDEC
	mnDEX
	mnDEY
	mnEOR
	mnINC
	mnINX
	mnINY
	mnJMP
	mnJSR
	mnLDA
	mnLDX
	mnLDY
	mnLSR
	mnNOP
	mnORA
	mnPHA
	mnPHP
	mnPLA
	mnPLP
	mnROL
	mnROR
	mnRTI
	mnRTS
	mnSBC
	mnSEC
	mnSED
	mnSEI
	mnSTA
	mnSTX
	mnSTY
	mnTAX
	mnTAY
	mnTSX
	mnTXA
	mnTXS
	mnTYA
	// unofficial
	mnSLO
	mnRLA
	mnSRE
	mnRRA
	mnSAX
	mnLAX
	mnDCP
	mnISB
	mnANC
	mnALR
	mnARR
	mnXAA
	mnAXS
	mnAHX
	mnSHX
	mnSHY
	mnTAS
	mnLAS
	mnJAM
)

// OpcodeInfo describes one of the 256 possible opcode bytes: what it does,
// how its operand is addressed, and how many cycles it costs before any
// page-cross or branch-taken penalty.
type OpcodeInfo struct {
	Mnemonic    Mnemonic
	Mode        AddressingMode
	Cycles      uint8
	PageCross   bool // an extra cycle is charged if indexing crosses a page
	Unofficial  bool
}

// opcodeTable is the 256-entry immutable decode table for all 151 official
// and 105 unofficial 6502 opcodes.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]OpcodeInfo {
	var t [256]OpcodeInfo
	set := func(op uint8, m Mnemonic, mode AddressingMode, cycles uint8, pageCross bool, unofficial bool) {
		t[op] = OpcodeInfo{Mnemonic: m, Mode: mode, Cycles: cycles, PageCross: pageCross, Unofficial: unofficial}
	}

	// --- Official opcodes ---
	set(0x00, mnBRK, AddrImplied, 7, false, false)
	set(0x01, mnORA, AddrIndexedIndirectX, 6, false, false)
	set(0x05, mnORA, AddrZeroPage, 3, false, false)
	set(0x06, mnASL, AddrZeroPage, 5, false, false)
	set(0x08, mnPHP, AddrImplied, 3, false, false)
	set(0x09, mnORA, AddrImmediate, 2, false, false)
	set(0x0A, mnASL, AddrAccumulator, 2, false, false)
	set(0x0D, mnORA, AddrAbsolute, 4, false, false)
	set(0x0E, mnASL, AddrAbsolute, 6, false, false)
	set(0x10, mnBPL, AddrRelative, 2, false, false)
	set(0x11, mnORA, AddrIndirectIndexedY, 5, true, false)
	set(0x15, mnORA, AddrZeroPageX, 4, false, false)
	set(0x16, mnASL, AddrZeroPageX, 6, false, false)
	set(0x18, mnCLC, AddrImplied, 2, false, false)
	set(0x19, mnORA, AddrAbsoluteY, 4, true, false)
	set(0x1D, mnORA, AddrAbsoluteX, 4, true, false)
	set(0x1E, mnASL, AddrAbsoluteX, 7, false, false)
	set(0x20, mnJSR, AddrAbsolute, 6, false, false)
	set(0x21, mnAND, AddrIndexedIndirectX, 6, false, false)
	set(0x24, mnBIT, AddrZeroPage, 3, false, false)
	set(0x25, mnAND, AddrZeroPage, 3, false, false)
	set(0x26, mnROL, AddrZeroPage, 5, false, false)
	set(0x28, mnPLP, AddrImplied, 4, false, false)
	set(0x29, mnAND, AddrImmediate, 2, false, false)
	set(0x2A, mnROL, AddrAccumulator, 2, false, false)
	set(0x2C, mnBIT, AddrAbsolute, 4, false, false)
	set(0x2D, mnAND, AddrAbsolute, 4, false, false)
	set(0x2E, mnROL, AddrAbsolute, 6, false, false)
	set(0x30, mnBMI, AddrRelative, 2, false, false)
	set(0x31, mnAND, AddrIndirectIndexedY, 5, true, false)
	set(0x35, mnAND, AddrZeroPageX, 4, false, false)
	set(0x36, mnROL, AddrZeroPageX, 6, false, false)
	set(0x38, mnSEC, AddrImplied, 2, false, false)
	set(0x39, mnAND, AddrAbsoluteY, 4, true, false)
	set(0x3D, mnAND, AddrAbsoluteX, 4, true, false)
	set(0x3E, mnROL, AddrAbsoluteX, 7, false, false)
	set(0x40, mnRTI, AddrImplied, 6, false, false)
	set(0x41, mnEOR, AddrIndexedIndirectX, 6, false, false)
	set(0x45, mnEOR, AddrZeroPage, 3, false, false)
	set(0x46, mnLSR, AddrZeroPage, 5, false, false)
	set(0x48, mnPHA, AddrImplied, 3, false, false)
	set(0x49, mnEOR, AddrImmediate, 2, false, false)
	set(0x4A, mnLSR, AddrAccumulator, 2, false, false)
	set(0x4C, mnJMP, AddrAbsolute, 3, false, false)
	set(0x4D, mnEOR, AddrAbsolute, 4, false, false)
	set(0x4E, mnLSR, AddrAbsolute, 6, false, false)
	set(0x50, mnBVC, AddrRelative, 2, false, false)
	set(0x51, mnEOR, AddrIndirectIndexedY, 5, true, false)
	set(0x55, mnEOR, AddrZeroPageX, 4, false, false)
	set(0x56, mnLSR, AddrZeroPageX, 6, false, false)
	set(0x58, mnCLI, AddrImplied, 2, false, false)
	set(0x59, mnEOR, AddrAbsoluteY, 4, true, false)
	set(0x5D, mnEOR, AddrAbsoluteX, 4, true, false)
	set(0x5E, mnLSR, AddrAbsoluteX, 7, false, false)
	set(0x60, mnRTS, AddrImplied, 6, false, false)
	set(0x61, mnADC, AddrIndexedIndirectX, 6, false, false)
	set(0x65, mnADC, AddrZeroPage, 3, false, false)
	set(0x66, mnROR, AddrZeroPage, 5, false, false)
	set(0x68, mnPLA, AddrImplied, 4, false, false)
	set(0x69, mnADC, AddrImmediate, 2, false, false)
	set(0x6A, mnROR, AddrAccumulator, 2, false, false)
	set(0x6C, mnJMP, AddrIndirect, 5, false, false)
	set(0x6D, mnADC, AddrAbsolute, 4, false, false)
	set(0x6E, mnROR, AddrAbsolute, 6, false, false)
	set(0x70, mnBVS, AddrRelative, 2, false, false)
	set(0x71, mnADC, AddrIndirectIndexedY, 5, true, false)
	set(0x75, mnADC, AddrZeroPageX, 4, false, false)
	set(0x76, mnROR, AddrZeroPageX, 6, false, false)
	set(0x78, mnSEI, AddrImplied, 2, false, false)
	set(0x79, mnADC, AddrAbsoluteY, 4, true, false)
	set(0x7D, mnADC, AddrAbsoluteX, 4, true, false)
	set(0x7E, mnROR, AddrAbsoluteX, 7, false, false)
	set(0x81, mnSTA, AddrIndexedIndirectX, 6, false, false)
	set(0x84, mnSTY, AddrZeroPage, 3, false, false)
	set(0x85, mnSTA, AddrZeroPage, 3, false, false)
	set(0x86, mnSTX, AddrZeroPage, 3, false, false)
	set(0x88, mnDEY, AddrImplied, 2, false, false)
	set(0x8A, mnTXA, AddrImplied, 2, false, false)
	set(0x8C, mnSTY, AddrAbsolute, 4, false, false)
	set(0x8D, mnSTA, AddrAbsolute, 4, false, false)
	set(0x8E, mnSTX, AddrAbsolute, 4, false, false)
	set(0x90, mnBCC, AddrRelative, 2, false, false)
	set(0x91, mnSTA, AddrIndirectIndexedY, 6, false, false)
	set(0x94, mnSTY, AddrZeroPageX, 4, false, false)
	set(0x95, mnSTA, AddrZeroPageX, 4, false, false)
	set(0x96, mnSTX, AddrZeroPageY, 4, false, false)
	set(0x98, mnTYA, AddrImplied, 2, false, false)
	set(0x99, mnSTA, AddrAbsoluteY, 5, false, false)
	set(0x9A, mnTXS, AddrImplied, 2, false, false)
	set(0x9D, mnSTA, AddrAbsoluteX, 5, false, false)
	set(0xA0, mnLDY, AddrImmediate, 2, false, false)
	set(0xA1, mnLDA, AddrIndexedIndirectX, 6, false, false)
	set(0xA2, mnLDX, AddrImmediate, 2, false, false)
	set(0xA4, mnLDY, AddrZeroPage, 3, false, false)
	set(0xA5, mnLDA, AddrZeroPage, 3, false, false)
	set(0xA6, mnLDX, AddrZeroPage, 3, false, false)
	set(0xA8, mnTAY, AddrImplied, 2, false, false)
	set(0xA9, mnLDA, AddrImmediate, 2, false, false)
	set(0xAA, mnTAX, AddrImplied, 2, false, false)
	set(0xAC, mnLDY, AddrAbsolute, 4, false, false)
	set(0xAD, mnLDA, AddrAbsolute, 4, false, false)
	set(0xAE, mnLDX, AddrAbsolute, 4, false, false)
	set(0xB0, mnBCS, AddrRelative, 2, false, false)
	set(0xB1, mnLDA, AddrIndirectIndexedY, 5, true, false)
	set(0xB4, mnLDY, AddrZeroPageX, 4, false, false)
	set(0xB5, mnLDA, AddrZeroPageX, 4, false, false)
	set(0xB6, mnLDX, AddrZeroPageY, 4, false, false)
	set(0xB8, mnCLV, AddrImplied, 2, false, false)
	set(0xB9, mnLDA, AddrAbsoluteY, 4, true, false)
	set(0xBA, mnTSX, AddrImplied, 2, false, false)
	set(0xBC, mnLDY, AddrAbsoluteX, 4, true, false)
	set(0xBD, mnLDA, AddrAbsoluteX, 4, true, false)
	set(0xBE, mnLDX, AddrAbsoluteY, 4, true, false)
	set(0xC0, mnCPY, AddrImmediate, 2, false, false)
	set(0xC1, mnCMP, AddrIndexedIndirectX, 6, false, false)
	set(0xC4, mnCPY, AddrZeroPage, 3, false, false)
	set(0xC5, mnCMP, AddrZeroPage, 3, false, false)
	set(0xC6, mnDEC, AddrZeroPage, 5, false, false)
	set(0xC8, mnINY, AddrImplied, 2, false, false)
	set(0xC9, mnCMP, AddrImmediate, 2, false, false)
	set(0xCA, mnDEX, AddrImplied, 2, false, false)
	set(0xCC, mnCPY, AddrAbsolute, 4, false, false)
	set(0xCD, mnCMP, AddrAbsolute, 4, false, false)
	set(0xCE, mnDEC, AddrAbsolute, 6, false, false)
	set(0xD0, mnBNE, AddrRelative, 2, false, false)
	set(0xD1, mnCMP, AddrIndirectIndexedY, 5, true, false)
	set(0xD5, mnCMP, AddrZeroPageX, 4, false, false)
	set(0xD6, mnDEC, AddrZeroPageX, 6, false, false)
	set(0xD8, mnCLD, AddrImplied, 2, false, false)
	set(0xD9, mnCMP, AddrAbsoluteY, 4, true, false)
	set(0xDD, mnCMP, AddrAbsoluteX, 4, true, false)
	set(0xDE, mnDEC, AddrAbsoluteX, 7, false, false)
	set(0xE0, mnCPX, AddrImmediate, 2, false, false)
	set(0xE1, mnSBC, AddrIndexedIndirectX, 6, false, false)
	set(0xE4, mnCPX, AddrZeroPage, 3, false, false)
	set(0xE5, mnSBC, AddrZeroPage, 3, false, false)
	set(0xE6, mnINC, AddrZeroPage, 5, false, false)
	set(0xE8, mnINX, AddrImplied, 2, false, false)
	set(0xE9, mnSBC, AddrImmediate, 2, false, false)
	set(0xEA, mnNOP, AddrImplied, 2, false, false)
	set(0xEC, mnCPX, AddrAbsolute, 4, false, false)
	set(0xED, mnSBC, AddrAbsolute, 4, false, false)
	set(0xEE, mnINC, AddrAbsolute, 6, false, false)
	set(0xF0, mnBEQ, AddrRelative, 2, false, false)
	set(0xF1, mnSBC, AddrIndirectIndexedY, 5, true, false)
	set(0xF5, mnSBC, AddrZeroPageX, 4, false, false)
	set(0xF6, mnINC, AddrZeroPageX, 6, false, false)
	set(0xF8, mnSED, AddrImplied, 2, false, false)
	set(0xF9, mnSBC, AddrAbsoluteY, 4, true, false)
	set(0xFD, mnSBC, AddrAbsoluteX, 4, true, false)
	set(0xFE, mnINC, AddrAbsoluteX, 7, false, false)

	// --- Unofficial opcodes ---
	// NOP variants: implied (1 byte)
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, mnNOP, AddrImplied, 2, false, true)
	}
	// NOP variants: immediate (2 bytes)
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, mnNOP, AddrImmediate, 2, false, true)
	}
	// NOP variants: zero page (2 bytes)
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		set(op, mnNOP, AddrZeroPage, 3, false, true)
	}
	// NOP variants: zero page,X (2 bytes)
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, mnNOP, AddrZeroPageX, 4, false, true)
	}
	// NOP variants: absolute (3 bytes)
	set(0x0C, mnNOP, AddrAbsolute, 4, false, true)
	// NOP variants: absolute,X (3 bytes, page-cross penalty)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, mnNOP, AddrAbsoluteX, 4, true, true)
	}

	set(0xEB, mnSBC, AddrImmediate, 2, false, true) // USBC

	// SLO: ASL + ORA
	set(0x03, mnSLO, AddrIndexedIndirectX, 8, false, true)
	set(0x07, mnSLO, AddrZeroPage, 5, false, true)
	set(0x0F, mnSLO, AddrAbsolute, 6, false, true)
	set(0x13, mnSLO, AddrIndirectIndexedY, 8, false, true)
	set(0x17, mnSLO, AddrZeroPageX, 6, false, true)
	set(0x1B, mnSLO, AddrAbsoluteY, 7, false, true)
	set(0x1F, mnSLO, AddrAbsoluteX, 7, false, true)

	// RLA: ROL + AND
	set(0x23, mnRLA, AddrIndexedIndirectX, 8, false, true)
	set(0x27, mnRLA, AddrZeroPage, 5, false, true)
	set(0x2F, mnRLA, AddrAbsolute, 6, false, true)
	set(0x33, mnRLA, AddrIndirectIndexedY, 8, false, true)
	set(0x37, mnRLA, AddrZeroPageX, 6, false, true)
	set(0x3B, mnRLA, AddrAbsoluteY, 7, false, true)
	set(0x3F, mnRLA, AddrAbsoluteX, 7, false, true)

	// SRE: LSR + EOR
	set(0x43, mnSRE, AddrIndexedIndirectX, 8, false, true)
	set(0x47, mnSRE, AddrZeroPage, 5, false, true)
	set(0x4F, mnSRE, AddrAbsolute, 6, false, true)
	set(0x53, mnSRE, AddrIndirectIndexedY, 8, false, true)
	set(0x57, mnSRE, AddrZeroPageX, 6, false, true)
	set(0x5B, mnSRE, AddrAbsoluteY, 7, false, true)
	set(0x5F, mnSRE, AddrAbsoluteX, 7, false, true)

	// RRA: ROR + ADC
	set(0x63, mnRRA, AddrIndexedIndirectX, 8, false, true)
	set(0x67, mnRRA, AddrZeroPage, 5, false, true)
	set(0x6F, mnRRA, AddrAbsolute, 6, false, true)
	set(0x73, mnRRA, AddrIndirectIndexedY, 8, false, true)
	set(0x77, mnRRA, AddrZeroPageX, 6, false, true)
	set(0x7B, mnRRA, AddrAbsoluteY, 7, false, true)
	set(0x7F, mnRRA, AddrAbsoluteX, 7, false, true)

	// SAX: store A & X
	set(0x83, mnSAX, AddrIndexedIndirectX, 6, false, true)
	set(0x87, mnSAX, AddrZeroPage, 3, false, true)
	set(0x8F, mnSAX, AddrAbsolute, 4, false, true)
	set(0x97, mnSAX, AddrZeroPageY, 4, false, true)

	// LAX: load A and X
	set(0xA3, mnLAX, AddrIndexedIndirectX, 6, false, true)
	set(0xA7, mnLAX, AddrZeroPage, 3, false, true)
	set(0xAF, mnLAX, AddrAbsolute, 4, false, true)
	set(0xB3, mnLAX, AddrIndirectIndexedY, 5, true, true)
	set(0xB7, mnLAX, AddrZeroPageY, 4, false, true)
	set(0xBF, mnLAX, AddrAbsoluteY, 4, true, true)

	// DCP: DEC + CMP
	set(0xC3, mnDCP, AddrIndexedIndirectX, 8, false, true)
	set(0xC7, mnDCP, AddrZeroPage, 5, false, true)
	set(0xCF, mnDCP, AddrAbsolute, 6, false, true)
	set(0xD3, mnDCP, AddrIndirectIndexedY, 8, false, true)
	set(0xD7, mnDCP, AddrZeroPageX, 6, false, true)
	set(0xDB, mnDCP, AddrAbsoluteY, 7, false, true)
	set(0xDF, mnDCP, AddrAbsoluteX, 7, false, true)

	// ISB/ISC: INC + SBC
	set(0xE3, mnISB, AddrIndexedIndirectX, 8, false, true)
	set(0xE7, mnISB, AddrZeroPage, 5, false, true)
	set(0xEF, mnISB, AddrAbsolute, 6, false, true)
	set(0xF3, mnISB, AddrIndirectIndexedY, 8, false, true)
	set(0xF7, mnISB, AddrZeroPageX, 6, false, true)
	set(0xFB, mnISB, AddrAbsoluteY, 7, false, true)
	set(0xFF, mnISB, AddrAbsoluteX, 7, false, true)

	// Unstable immediate opcodes
	set(0x0B, mnANC, AddrImmediate, 2, false, true)
	set(0x2B, mnANC, AddrImmediate, 2, false, true)
	set(0x4B, mnALR, AddrImmediate, 2, false, true)
	set(0x6B, mnARR, AddrImmediate, 2, false, true)
	set(0x8B, mnXAA, AddrImmediate, 2, false, true)
	set(0xAB, mnLAX, AddrImmediate, 2, false, true) // LXA/ATX
	set(0xCB, mnAXS, AddrImmediate, 2, false, true) // SBX

	// Unstable stores / LAS / TAS
	set(0x93, mnAHX, AddrIndirectIndexedY, 6, false, true)
	set(0x9F, mnAHX, AddrAbsoluteY, 5, false, true)
	set(0x9E, mnSHX, AddrAbsoluteY, 5, false, true)
	set(0x9C, mnSHY, AddrAbsoluteX, 5, false, true)
	set(0x9B, mnTAS, AddrAbsoluteY, 5, false, true)
	set(0xBB, mnLAS, AddrAbsoluteY, 4, true, true)

	// JAM/KIL: halts the CPU forever. Cycle count is nominal; once jammed
	// the CPU never fetches another opcode.
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, mnJAM, AddrImplied, 2, false, true)
	}

	return t
}
