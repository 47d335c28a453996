package ppu

// SpriteData represents sprite attribute data
type SpriteData struct {
	Y          uint8 // Y position - 1
	TileIndex  uint8 // Tile index
	Attributes uint8 // Attributes (palette, priority, flip)
	X          uint8 // X position
}

// SpriteInfo represents a sprite with its OAM index
type SpriteInfo struct {
	SpriteData
	OAMIndex int // Original index in OAM (for sprite 0 detection)
}

// Sprite attribute flags
const (
	SpriteFlipHorizontal = 0x40
	SpriteFlipVertical   = 0x80
	SpritePriority       = 0x20 // 0=front of background, 1=behind background
	SpritePaletteMask    = 0x03 // Palette selection (bits 0-1)
)

// getPixelColor extracts pixel color from tile pattern data
func getPixelColor(patternLo, patternHi uint8, pixelX int) uint8 {
	// Extract bit for this pixel (MSB = leftmost pixel)
	bitPos := 7 - pixelX

	lowBit := (patternLo >> bitPos) & 1
	highBit := (patternHi >> bitPos) & 1

	return (highBit << 1) | lowBit
}

// reverseBits reverses the bit order of a pattern byte, used for sprites
// flipped horizontally: bit 7 (leftmost pixel) swaps with bit 0.
func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// clearSecondaryOAM resets secondary OAM to $FF, as real hardware does during
// dots 1-64 of each visible scanline, before sprite evaluation begins at
// dot 65.
func (p *PPU) clearSecondaryOAM() {
	for i := range p.secondaryOAM {
		p.secondaryOAM[i] = 0xFF
	}
	p.spriteCount = 0
}

// evaluateSprites scans primary OAM for sprites that fall on the next
// scanline, modeled on the real sprite evaluation hardware: once 8 sprites
// have been found, further matches set the overflow flag, but the scan
// counter m keeps advancing alongside n instead of resetting to the Y byte
// of the next sprite. That quirk is what makes the overflow flag's behavior
// appear erratic on real hardware once more than 8 sprites occupy a line.
func (p *PPU) evaluateSprites() {
	height := 8
	if p.PPUCTRL&PPUCTRLSpriteSize != 0 {
		height = 16
	}

	targetLine := p.Scanline + 1

	spriteCount := 0
	overflow := false
	n, m := 0, 0
	for n < 64 {
		y := int(p.OAM[n*4+m])
		inRange := targetLine >= y && targetLine < y+height

		if spriteCount < 8 {
			if inRange {
				copy(p.secondaryOAM[spriteCount*4:], p.OAM[n*4:n*4+4])
				p.spriteIndexes[spriteCount] = n
				spriteCount++
			}
			n++
		} else {
			if inRange {
				overflow = true
			}
			m = (m + 1) & 3
			n++
		}
	}

	p.spriteCount = spriteCount
	if overflow {
		p.PPUSTATUS |= 0x20
	}
}

// fetchSpritePatterns loads pattern bytes for the sprites found by
// evaluateSprites, corresponding to the real PPU's dots 257-320 sprite
// fetch phase.
func (p *PPU) fetchSpritePatterns() {
	height := 8
	if p.PPUCTRL&PPUCTRLSpriteSize != 0 {
		height = 16
	}

	targetLine := p.Scanline + 1

	for i := 0; i < 8; i++ {
		if i >= p.spriteCount {
			p.spritePatternLo[i] = 0
			p.spritePatternHi[i] = 0
			p.spriteX[i] = 0
			p.spriteAttr[i] = 0
			continue
		}

		y := p.secondaryOAM[i*4]
		tileIndex := p.secondaryOAM[i*4+1]
		attr := p.secondaryOAM[i*4+2]
		x := p.secondaryOAM[i*4+3]

		row := targetLine - int(y)
		if row < 0 {
			row = 0
		}
		if attr&SpriteFlipVertical != 0 {
			row = (height - 1) - row
		}

		var tileAddr uint16
		if height == 16 {
			bank := tileIndex & 0x01
			index := tileIndex &^ 0x01
			if row >= 8 {
				index++
				row -= 8
			}
			base := uint16(0x0000)
			if bank != 0 {
				base = 0x1000
			}
			tileAddr = base + uint16(index)*16 + uint16(row)
		} else {
			base := uint16(0x0000)
			if p.PPUCTRL&PPUCTRLSpriteTable != 0 {
				base = 0x1000
			}
			tileAddr = base + uint16(tileIndex)*16 + uint16(row)
		}

		lo := p.readVRAM(tileAddr)
		hi := p.readVRAM(tileAddr + 8)
		if attr&SpriteFlipHorizontal != 0 {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		p.spritePatternLo[i] = lo
		p.spritePatternHi[i] = hi
		p.spriteX[i] = x
		p.spriteAttr[i] = attr
	}
}

// backgroundPixel reads the current pixel out of the background shift
// registers, selected by fine X scroll.
func (p *PPU) backgroundPixel() (colorIndex uint8, palette uint8) {
	if p.PPUMASK&PPUMASKBGShow == 0 {
		return 0, 0
	}

	bit := uint16(15 - p.x)
	mask := uint16(1) << bit

	var lo, hi uint8
	if p.bgShiftPatternLo&mask != 0 {
		lo = 1
	}
	if p.bgShiftPatternHi&mask != 0 {
		hi = 1
	}
	colorIndex = (hi << 1) | lo

	var palLo, palHi uint8
	if p.bgShiftAttrLo&mask != 0 {
		palLo = 1
	}
	if p.bgShiftAttrHi&mask != 0 {
		palHi = 1
	}
	palette = (palHi << 1) | palLo

	return
}

// spritePixel returns the highest-priority (lowest OAM index) opaque sprite
// pixel at screen column x, if any.
func (p *PPU) spritePixel(x int) (colorIndex uint8, attr uint8, spriteIndex int, found bool) {
	if p.PPUMASK&PPUMASKSpriteShow == 0 {
		return 0, 0, 0, false
	}

	for i := 0; i < p.spriteCount; i++ {
		sx := int(p.spriteX[i])
		if x < sx || x >= sx+8 {
			continue
		}
		col := x - sx
		idx := getPixelColor(p.spritePatternLo[i], p.spritePatternHi[i], col)
		if idx == 0 {
			continue
		}
		return idx, p.spriteAttr[i], p.spriteIndexes[i], true
	}

	return 0, 0, 0, false
}

// renderPixel composites the background and sprite layers for screen
// column x on the current scanline and writes the result to the frame
// buffer.
func (p *PPU) renderPixel(x int) {
	y := p.Scanline
	if y < 0 || y >= 240 || x < 0 || x >= 256 {
		return
	}
	index := y*256 + x

	renderingEnabled := (p.PPUMASK & (PPUMASKBGShow | PPUMASKSpriteShow)) != 0
	if !renderingEnabled {
		p.FrameBuffer[index] = p.PaletteManager.GetBackgroundColor(0, 0)
		return
	}

	bgColorIndex, bgPalette := p.backgroundPixel()
	if x < 8 && p.PPUMASK&PPUMASKBGLeft == 0 {
		bgColorIndex = 0
	}
	bgOpaque := bgColorIndex != 0

	finalColor := p.PaletteManager.GetBackgroundColor(0, 0)
	if bgOpaque {
		finalColor = p.PaletteManager.GetBackgroundColor(bgPalette, bgColorIndex)
	}

	spColorIndex, spAttr, spIndex, spFound := p.spritePixel(x)
	if x < 8 && p.PPUMASK&PPUMASKSpriteLeft == 0 {
		spFound = false
	}

	if spFound {
		behindBG := spAttr&SpritePriority != 0
		if !behindBG || !bgOpaque {
			palette := spAttr & SpritePaletteMask
			finalColor = p.PaletteManager.GetSpriteColor(palette, spColorIndex)
		}

		if spIndex == 0 && bgOpaque && x != 255 &&
			p.PPUMASK&PPUMASKBGShow != 0 && p.PPUMASK&PPUMASKSpriteShow != 0 {
			p.PPUSTATUS |= PPUSTATUSSprite0Hit
		}
	}

	p.FrameBuffer[index] = finalColor
	p.PersistentFrameBuffer[index] = finalColor
	p.renderingOccurred = true
}
