package enums

import "testing"

func TestParseAction(t *testing.T) {
	for a := ActionMove; a <= ActionExit; a++ {
		t.Run(a.String(), func(t *testing.T) {
			if got := ParseAction(a.String()); got != a {
				t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
			}
		})
	}

	if got := ParseAction("dance"); got != ActionUnknown {
		t.Errorf("ParseAction(dance) = %v, want UNKNOWN", got)
	}
	if got := ParseAction("descend"); got != ActionDescend {
		t.Errorf("ParseAction is case sensitive: got %v", got)
	}
}

func TestParseItemKind(t *testing.T) {
	tests := []struct {
		in   string
		want ItemKind
	}{
		{"heal", ItemHeal},
		{"FIREBALL", ItemFireball},
		{"Shield", ItemShield},
		{"wand", ItemUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseItemKind(tt.in); got != tt.want {
				t.Errorf("ParseItemKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAIKindString(t *testing.T) {
	if AIConfused.String() != "CONFUSED" || ParseAIKind("basic") != AIBasic {
		t.Error("AIKind mapping is broken")
	}
	if AIKind(42).String() != "UNKNOWN" {
		t.Error("unknown AIKind must stringify to UNKNOWN")
	}
}
