package keys

import "testing"

func TestKeyStrings(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},
		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"Space", Space, "space"},
		{"Escape", Escape, "esc"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlF", CtrlF, "ctrl+f"},
		{"CtrlP", CtrlP, "ctrl+p"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}
