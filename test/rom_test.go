package test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saitounes/nescore/pkg/bus"
	"github.com/saitounes/nescore/pkg/cartridge"
	"github.com/saitounes/nescore/pkg/nes"
)

// ROMTestResult represents the result of a ROM test
type ROMTestResult struct {
	TestName     string
	Passed       bool
	ErrorMessage string
	Cycles       uint64
	Duration     time.Duration
}

type iNESHeader struct {
	Magic      [4]uint8
	PRGROMSize uint8
	CHRROMSize uint8
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	_          [7]uint8
}

// decodeINES parses a raw iNES image into a cartridge Config. pkg/cartridge
// itself never does this; ROM file parsing belongs to the caller.
func decodeINES(data []byte) (*cartridge.Config, error) {
	r := bytes.NewReader(data)

	var header iNESHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if string(header.Magic[:]) != "NES\x1a" {
		return nil, fmt.Errorf("not an iNES file")
	}

	if header.Flags6&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, 512); err != nil {
			return nil, fmt.Errorf("skipping trainer: %w", err)
		}
	}

	prg := make([]uint8, int(header.PRGROMSize)*16384)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("reading PRG ROM: %w", err)
	}

	var chr []uint8
	if header.CHRROMSize > 0 {
		chr = make([]uint8, int(header.CHRROMSize)*8192)
		if _, err := io.ReadFull(r, chr); err != nil {
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

// loadROMFromFile loads a ROM file and creates a cartridge
func loadROMFromFile(filename string) (*cartridge.Cartridge, error) {
	romPath := filepath.Join("roms", filename)

	if _, err := os.Stat(romPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("ROM file not found: %s", romPath)
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file: %w", err)
	}

	cfg, err := decodeINES(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ROM: %w", err)
	}

	cart, err := cartridge.New(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build cartridge: %w", err)
	}

	return cart, nil
}

// runROMTest runs a ROM test with the given parameters
func runROMTest(t *testing.T, romFile string, maxCycles uint64, expectedResult string) *ROMTestResult {
	result := &ROMTestResult{
		TestName: romFile,
		Passed:   false,
	}

	startTime := time.Now()
	defer func() {
		result.Duration = time.Since(startTime)
	}()

	cart, err := loadROMFromFile(romFile)
	if err != nil {
		result.ErrorMessage = err.Error()
		t.Logf("Failed to load ROM %s: %v", romFile, err)
		return result
	}

	system := nes.New(bus.RegionNTSC)
	system.LoadCartridge(cart)
	system.Reset()

	for system.Cycles < maxCycles {
		system.Step()

		if system.Cycles%10000 == 0 {
			t.Logf("ROM %s: %d cycles completed", romFile, system.Cycles)
		}
	}

	result.Cycles = system.Cycles
	result.Passed = true

	return result
}

// TestROMDirectory tests all ROM files in the roms directory
func TestROMDirectory(t *testing.T) {
	romsDir := "roms"

	if _, err := os.Stat(romsDir); os.IsNotExist(err) {
		t.Skip("Roms directory not found, skipping ROM tests")
		return
	}

	files, err := os.ReadDir(romsDir)
	if err != nil {
		t.Fatalf("Failed to read roms directory: %v", err)
	}

	if len(files) == 0 {
		t.Skip("No ROM files found in roms directory")
		return
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) == ".nes" {
			t.Run(file.Name(), func(t *testing.T) {
				result := runROMTest(t, file.Name(), 100000, "")
				if !result.Passed {
					t.Errorf("ROM test failed: %s", result.ErrorMessage)
				}
				t.Logf("ROM %s completed in %d cycles (%v)",
					result.TestName, result.Cycles, result.Duration)
			})
		}
	}
}

// TestNestestROM tests the nestest.nes ROM specifically
func TestNestestROM(t *testing.T) {
	romFile := "nestest.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("Nestest ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 1000000, "")

	if !result.Passed {
		t.Errorf("Nestest failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("Nestest completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestInstrTestROM tests the instr_test-v5 ROM
func TestInstrTestROM(t *testing.T) {
	romFile := "01-basics.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("Instruction test ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 2000000, "")

	if !result.Passed {
		t.Errorf("Instruction test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("Instruction test 01-basics completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestInstrTest02ImpliedROM tests the 02-implied ROM
func TestInstrTest02ImpliedROM(t *testing.T) {
	romFile := "02-implied.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("02-implied ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 2000000, "")

	if !result.Passed {
		t.Errorf("02-implied test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("02-implied test completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestInstrTest03ImmediateROM tests the 03-immediate ROM
func TestInstrTest03ImmediateROM(t *testing.T) {
	romFile := "03-immediate.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("03-immediate ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 2000000, "")

	if !result.Passed {
		t.Errorf("03-immediate test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("03-immediate test completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestInstrTest04ZeroPageROM tests the 04-zero_page ROM
func TestInstrTest04ZeroPageROM(t *testing.T) {
	romFile := "04-zero_page.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("04-zero_page ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 2000000, "")

	if !result.Passed {
		t.Errorf("04-zero_page test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("04-zero_page test completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestCPUDummyReadsROM tests the cpu_dummy_reads ROM
func TestCPUDummyReadsROM(t *testing.T) {
	romFile := "cpu_dummy_reads.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("CPU dummy reads ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 1000000, "")

	if !result.Passed {
		t.Errorf("CPU dummy reads test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("CPU dummy reads test completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestPPUSpriteHitROM tests the ppu_sprite_hit ROM
func TestPPUSpriteHitROM(t *testing.T) {
	romFile := "sprite_hit_01_basics.nes"

	if _, err := loadROMFromFile(romFile); err != nil {
		t.Skipf("PPU sprite hit ROM not found: %v", err)
		return
	}

	result := runROMTest(t, romFile, 2000000, "")

	if !result.Passed {
		t.Errorf("PPU sprite hit test failed: %s", result.ErrorMessage)
		return
	}

	t.Logf("PPU sprite hit test completed successfully in %d cycles (%v)",
		result.Cycles, result.Duration)
}

// TestMapper1Integration tests Mapper 1 functionality with a custom ROM
func TestMapper1Integration(t *testing.T) {
	testProgram := []uint8{
		// Test basic MMC1 functionality
		0xA9, 0x80, // LDA #$80 - Reset MMC1
		0x8D, 0x00, 0x80, // STA $8000

		// Set control register to 16KB PRG mode (last bank fixed), 8KB CHR mode
		0xA9, 0x0F, // LDA #$0F (bits 0-3 set)
		0x8D, 0x00, 0x80, // STA $8000 (write bit 0)
		0x4A,             // LSR A
		0x8D, 0x00, 0x80, // STA $8000 (write bit 1)
		0x4A,             // LSR A
		0x8D, 0x00, 0x80, // STA $8000 (write bit 2)
		0x4A,             // LSR A
		0x8D, 0x00, 0x80, // STA $8000 (write bit 3)
		0x4A,             // LSR A
		0x8D, 0x00, 0x80, // STA $8000 (write bit 4)

		// Test PRG bank switching
		0xA9, 0x01, // LDA #$01 (switch to bank 1)
		0x8D, 0x00, 0xE0, // STA $E000 (bit 0)
		0x4A,             // LSR A (now 0)
		0x8D, 0x00, 0xE0, // STA $E000 (bit 1)
		0x8D, 0x00, 0xE0, // STA $E000 (bit 2)
		0x8D, 0x00, 0xE0, // STA $E000 (bit 3)
		0x8D, 0x00, 0xE0, // STA $E000 (bit 4)

		// Simple test to verify we're still executing
		0xA9, 0x42, // LDA #$42
		0x85, 0x00, // STA $00

		// Infinite loop
		0x4C, 0x30, 0x80, // JMP $8030 (current location)
	}

	prgROM := make([]uint8, 32768)
	copy(prgROM, testProgram)
	copy(prgROM[16384:], testProgram)

	for _, base := range []int{0x3FFA, 0x7FFA} {
		prgROM[base+0] = 0x00 // NMI vector low
		prgROM[base+1] = 0x80 // NMI vector high
		prgROM[base+2] = 0x00 // Reset vector low
		prgROM[base+3] = 0x80 // Reset vector high
		prgROM[base+4] = 0x00 // IRQ vector low
		prgROM[base+5] = 0x80 // IRQ vector high
	}

	chrROM := make([]uint8, 16384)
	for i := range chrROM {
		chrROM[i] = uint8(i % 256)
	}

	cart, err := cartridge.New(cartridge.Config{
		PRGROM:    prgROM,
		CHRROM:    chrROM,
		Mapper:    1,
		Mirroring: cartridge.MirroringHorizontal,
	})
	if err != nil {
		t.Fatalf("Failed to build Mapper 1 test cartridge: %v", err)
	}

	system := nes.New(bus.RegionNTSC)
	system.LoadCartridge(cart)
	system.Reset()

	maxCycles := uint64(50000)
	for system.Cycles < maxCycles {
		system.Step()

		if system.CPU.PC == 0x8030 {
			break
		}

		if system.Cycles > 10000 && system.Cycles%1000 == 0 {
			t.Logf("Cycles: %d, PC: %04X", system.Cycles, system.CPU.PC)
		}
	}

	t.Logf("Mapper 1 test completed after %d cycles", system.Cycles)
	t.Logf("Final PC: %04X", system.CPU.PC)
	t.Logf("Test memory location $00: %02X", system.Bus.Read(0x00))

	if system.CPU.PC != 0x8030 {
		t.Errorf("Program did not reach halt condition, PC = %04X", system.CPU.PC)
	}
	if system.Bus.Read(0x00) != 0x42 {
		t.Errorf("Expected test value 0x42 at memory location $00, got %02X", system.Bus.Read(0x00))
	}
}

// BenchmarkROMExecution benchmarks ROM execution performance
func BenchmarkROMExecution(b *testing.B) {
	romFile := "nestest.nes"

	cart, err := loadROMFromFile(romFile)
	if err != nil {
		b.Skipf("ROM not found: %v", err)
		return
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		system := nes.New(bus.RegionNTSC)
		system.LoadCartridge(cart)
		system.Reset()

		targetCycles := uint64(10000)
		for system.Cycles < targetCycles {
			system.Step()
		}
	}
}
