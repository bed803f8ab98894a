package types

import (
	"fmt"
)

// Color хранит 24-битный RGB-цвет в формате 0xRRGGBB.
type Color uint32

// Палитра, которой пользуется игра.
const (
	ColorWhite        Color = 0xFFFFFF
	ColorBlack        Color = 0x000000
	ColorRed          Color = 0xFF0000
	ColorDarkRed      Color = 0x800000
	ColorOrange       Color = 0xFF7F00
	ColorYellow       Color = 0xFFFF00
	ColorLightYellow  Color = 0xFFFF73
	ColorLightRed     Color = 0xFF7373
	ColorGreen        Color = 0x00FF00
	ColorLightGreen   Color = 0x7FFF7F
	ColorDesatGreen   Color = 0x3F9F3F
	ColorDarkerGreen  Color = 0x007F00
	ColorViolet       Color = 0x7F00FF
	ColorLightViolet  Color = 0xB87FFF
	ColorLightCyan    Color = 0x73FFFF
	ColorSky          Color = 0x00BFFF
	ColorLightBlue    Color = 0x73B9FF
	ColorDarkerOrange Color = 0x7F3F00
	ColorLightGrey    Color = 0x9F9F9F

	// Цвета тайлов карты.
	ColorDarkWall    Color = 0x000064
	ColorLightWall   Color = 0x826E32
	ColorDarkGround  Color = 0x323296
	ColorLightGround Color = 0xC8B432
)

// RGB раскладывает цвет на компоненты.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex возвращает строку вида "#FFA500".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&maskColor)
}

// Glyph представляет упакованное представление цветного символа.
// Использует 32 бита (uint32) для хранения в формате:
//
//	[0:8] - символ (8 бит = 1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (24 бита = 3 байта) - маска 0xFFFFFF
//
// В сохранении глиф пишется как обычное число.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph собирает Glyph из цвета и символа.
// Учитываются только младшие 24 бита цвета.
//
//	glyph := MakeGlyph(ColorYellow, '@') // 0xFFFF0040
func MakeGlyph(color Color, char byte) Glyph {
	return Glyph((uint32(color)&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает цвет глифа.
func (g Glyph) Color() Color {
	return Color(uint32(g>>shiftColor) & maskColor)
}

// Char извлекает символ глифа.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor возвращает тот же символ другого цвета (трупы, подсветка).
func (g Glyph) WithColor(c Color) Glyph {
	return MakeGlyph(c, g.Char())
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Непечатаемые символы показываем в hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.Color().Hex())
}
