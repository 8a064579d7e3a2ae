package types

import "fmt"

// Glyph - упакованное представление цветного символа.
// Использует 32 бита (uint32) в формате:
//
//	[0:8]  - символ (8 бит)   - маска 0xFF
//	[8:32] - RGB-цвет (24 бита) - маска 0xFFFFFF
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph создает Glyph из RGB-цвета (0xRRGGBB) и ASCII-символа.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный RGB-цвет.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor возвращает тот же символ с другим цветом.
// Используется при смерти: симвoл сущности перекрашивается в цвет трупа.
func (g Glyph) WithColor(colorRGB uint32) Glyph {
	return MakeGlyph(colorRGB, g.Char())
}

// WithChar возвращает новый символ с тем же цветом.
func (g Glyph) WithChar(char byte) Glyph {
	return MakeGlyph(g.Color(), char)
}

// HexColor возвращает HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer. Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}
