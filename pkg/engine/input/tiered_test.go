package input

import (
	"bufio"
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line   string
		action Action
		args   []string
	}{
		{"move 5", ActionMove, []string{"5"}},
		{"  GO 5  ", ActionMove, []string{"5"}},
		{"5", ActionMove, []string{"5"}},
		{"back", ActionBack, nil},
		{"shoot 3 4 5", ActionShoot, []string{"3", "4", "5"}},
		{"use flask of water", ActionUse, []string{"flask", "of", "water"}},
		{"drop rope", ActionDrop, []string{"rope"}},
		{"i", ActionInventory, nil},
		{"?", ActionHint, nil},
		{"quit", ActionQuit, nil},
		{"enter", ActionAction, nil},
		{"arrow_down", ActionMenuDown, nil},
		{"", ActionNone, nil},
		{"dance wildly", ActionNone, []string{"dance", "wildly"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseCommand(tt.line)
			if got.Action != tt.action {
				t.Errorf("ParseCommand(%q).Action = %s, want %s", tt.line, ActionName(got.Action), ActionName(tt.action))
			}
			if strings.Join(got.Args, ",") != strings.Join(tt.args, ",") {
				t.Errorf("ParseCommand(%q).Args = %v, want %v", tt.line, got.Args, tt.args)
			}
		})
	}
}

func TestIntentArgs(t *testing.T) {
	in := Intent{Action: ActionUse, Args: []string{"flask", "of", "water"}}

	if got := in.Arg(0); got != "flask" {
		t.Errorf("Arg(0) = %q, want flask", got)
	}
	if got := in.Arg(5); got != "" {
		t.Errorf("Arg(5) = %q, want empty", got)
	}
	if got := in.Rest(); got != "flask of water" {
		t.Errorf("Rest() = %q", got)
	}
}

func TestGetBindingsByAction(t *testing.T) {
	b := GetBindingsByAction()

	quit := b[ActionQuit]
	if len(quit) != 3 || quit[0] != "exit" || quit[1] != "q" || quit[2] != "quit" {
		t.Errorf("quit bindings = %v", quit)
	}
	if _, ok := b[ActionNone]; ok {
		t.Error("ActionNone should have no bindings")
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("move 4\r\nlast"))

	if got := readLine(r); got != "move 4" {
		t.Errorf("first line = %q", got)
	}
	if got := readLine(r); got != "last" {
		t.Errorf("unterminated line = %q", got)
	}
	if got := readLine(r); got != "quit" {
		t.Errorf("EOF = %q, want quit", got)
	}
}
