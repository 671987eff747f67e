package browser

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from State
		a    Action
		want State
	}{
		{StateRoot, ActionAdd, StateAddEntry},
		{StateRoot, ActionBrowse, StateFilterSelect},
		{StateRoot, ActionQuit, StateExit},
		{StateRoot, ActionNone, StateRoot},
		{StateRoot, ActionNext, StateRoot},
		{StateFilterSelect, ActionByEmployee, StateValuePick},
		{StateFilterSelect, ActionByDate, StateValuePick},
		{StateFilterSelect, ActionByMinutes, StateValuePick},
		{StateFilterSelect, ActionBySearch, StateResultWalk},
		{StateFilterSelect, ActionAll, StateResultWalk},
		{StateFilterSelect, ActionMainMenu, StateRoot},
		{StateFilterSelect, ActionNone, StateFilterSelect},
		{StateFilterSelect, ActionQuit, StateExit},
		{StateValuePick, ActionSelect, StateResultWalk},
		{StateValuePick, ActionNone, StateValuePick},
		{StateValuePick, ActionMainMenu, StateRoot},
		{StateResultWalk, ActionNext, StateResultWalk},
		{StateResultWalk, ActionDelete, StateResultWalk},
		{StateResultWalk, ActionMainMenu, StateRoot},
		{StateResultWalk, ActionNone, StateResultWalk},
		{StateResultWalk, ActionQuit, StateExit},
	}
	for _, tt := range tests {
		if got := transition(tt.from, tt.a); got != tt.want {
			t.Errorf("transition(%s, %d) = %s, want %s", tt.from, tt.a, got, tt.want)
		}
	}
}

func TestMenuAction(t *testing.T) {
	m := rootMenu()
	tests := []struct {
		input string
		want  Action
	}{
		{"a", ActionAdd},
		{"A", ActionAdd},
		{" b ", ActionBrowse},
		{"Q", ActionQuit},
		{"", ActionNone},
		{"add", ActionNone},
	}
	for _, tt := range tests {
		if got := m.action(tt.input); got != tt.want {
			t.Errorf("rootMenu().action(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMenuKeysUnique(t *testing.T) {
	for _, m := range []menu{rootMenu(), filterMenu(), walkMenu(), pickMenu()} {
		seen := map[string]bool{}
		for _, it := range m.items {
			if seen[it.key] {
				t.Errorf("menu %q: duplicate key %q", m.title, it.key)
			}
			seen[it.key] = true
		}
	}
}
