package main

import (
	"strings"
	"testing"

	"randroom/internal/core/types/enums"
	"randroom/internal/infrastructure/storage"
)

func sampleReplay() *storage.Replay {
	return &storage.Replay{
		Seed:      7,
		Timestamp: 0,
		Events: []storage.ReplayEvent{
			{Kind: storage.EventCommand, Action: enums.ActionMove},
			{Kind: storage.EventCommand, Action: enums.ActionMove},
			{Kind: storage.EventCommand, Action: enums.ActionUse},
			{Kind: storage.EventTarget, X: 3, Y: 4, OK: true},
			{Kind: storage.EventMenu, Choice: 1, OK: true},
		},
	}
}

func TestPrintInfo(t *testing.T) {
	var sb strings.Builder
	printInfo(&sb, sampleReplay())

	out := sb.String()
	for _, want := range []string{
		"seed:     7",
		"events:   5 (commands 3, targets 1, menus 1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestPrintActions(t *testing.T) {
	var sb strings.Builder
	printActions(&sb, sampleReplay())

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), sb.String())
	}
	if !strings.HasPrefix(lines[0], "MOVE") || !strings.HasSuffix(lines[0], "2") {
		t.Errorf("first line = %q, want MOVE with count 2", lines[0])
	}
	if !strings.HasPrefix(lines[1], "USE") {
		t.Errorf("second line = %q, want USE", lines[1])
	}
}
