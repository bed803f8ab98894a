package types

import (
	"fmt"
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		char  byte
		want  Glyph
	}{
		{"yellow player", ColorYellow, '@', Glyph(0xFFFF0040)},
		{"black space", ColorBlack, ' ', Glyph(0x00000020)},
		{"dark red corpse", ColorDarkRed, '%', Glyph(0x80000025)},
		{"color truncation", Color(0x12345678), 'x', Glyph(0x34567878)},
		{"max char", Color(0x404040), 0xFF, Glyph(0x404040FF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.color, tt.char); got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestGlyph_Fields(t *testing.T) {
	tests := []struct {
		name      string
		g         Glyph
		wantChar  byte
		wantColor Color
	}{
		{"orange A", Glyph(0xFFA50041), 'A', 0xFFA500},
		{"green B", Glyph(0x00FF0042), 'B', 0x00FF00},
		{"fields do not leak", Glyph(0x12345678), 0x78, 0x123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Char(); got != tt.wantChar {
				t.Errorf("Char() = %q, want %q", got, tt.wantChar)
			}
			if got := tt.g.Color(); got != tt.wantColor {
				t.Errorf("Color() = 0x%06X, want 0x%06X", uint32(got), uint32(tt.wantColor))
			}
		})
	}
}

func TestGlyph_WithColor(t *testing.T) {
	g := MakeGlyph(ColorDesatGreen, 'o').WithColor(ColorDarkRed)
	if g.Char() != 'o' || g.Color() != ColorDarkRed {
		t.Errorf("WithColor() = %s", g)
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b := ColorLightWall.RGB()
	if r != 0x82 || g != 0x6E || b != 0x32 {
		t.Errorf("RGB() = %02X %02X %02X", r, g, b)
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(0xFFA500, 'A'), "Glyph{char='A', color=#FFA500}"},
		{"newline escape", MakeGlyph(0xFFFFFF, '\n'), "Glyph{char='\\x0A', color=#FFFFFF}"},
		{"del char", MakeGlyph(0x654321, 0x7F), "Glyph{char='\\x7F', color=#654321}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func ExampleMakeGlyph() {
	glyph := MakeGlyph(ColorYellow, '@')

	fmt.Printf("Символ: %c\n", glyph.Char())
	fmt.Printf("Цвет: %s\n", glyph.Color().Hex())
	fmt.Println(glyph)

	// Output:
	// Символ: @
	// Цвет: #FFFF00
	// Glyph{char='@', color=#FFFF00}
}
