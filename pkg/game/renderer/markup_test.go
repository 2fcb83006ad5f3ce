package renderer

import (
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"You pick up the ITEM{rope}.", nil, "You pick up the rope."},
		{"ROOM{%s} lies ahead.", []any{"Sand Pit"}, "Sand Pit lies ahead."},
		{"HAZARD{Bats} and TREASURE{Crown}", nil, "Bats and Crown"},
		{"GT{GOODBYE}", nil, "Goodbye, hunter."},
		{"plain text", nil, "plain text"},
	}

	for _, tt := range tests {
		if got := StripMarkup(tt.msg, tt.args...); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestReplaceMarkup_UnknownFunction(t *testing.T) {
	got := ReplaceMarkup(plainMarkup, "NOPE{x}")

	if !strings.HasPrefix(got, "ERROR, function not found") {
		t.Errorf("ReplaceMarkup() = %q", got)
	}
}

func TestApplyMarkup_NoRenderer(t *testing.T) {
	prev := Current
	Current = nil
	t.Cleanup(func() { Current = prev })

	if got := ApplyMarkup("Take the ITEM{%s}", "lantern"); got != "Take the lantern" {
		t.Errorf("ApplyMarkup() = %q", got)
	}
}
