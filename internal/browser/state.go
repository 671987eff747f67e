package browser

import (
	"strconv"
	"strings"
)

// State is a node of the session state machine.
type State int

const (
	StateRoot State = iota
	StateAddEntry
	StateFilterSelect
	StateValuePick
	StateResultWalk
	StateExit
)

func (s State) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateAddEntry:
		return "add-entry"
	case StateFilterSelect:
		return "filter-select"
	case StateValuePick:
		return "value-pick"
	case StateResultWalk:
		return "result-walk"
	case StateExit:
		return "exit"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Action is a user choice on one of the menus.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionBrowse
	ActionQuit
	ActionMainMenu
	ActionByEmployee
	ActionByDate
	ActionByMinutes
	ActionBySearch
	ActionAll
	ActionSelect
	ActionNext
	ActionDelete
)

type menuItem struct {
	key    string
	label  string
	action Action
}

type menu struct {
	title string
	items []menuItem
}

// action maps typed input to the item it selects. Keys are case-insensitive.
func (m menu) action(input string) Action {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, it := range m.items {
		if it.key == input {
			return it.action
		}
	}
	return ActionNone
}

func rootMenu() menu {
	return menu{
		title: "WORK LOG",
		items: []menuItem{
			{"a", "Add new entry", ActionAdd},
			{"b", "Browse or search entries", ActionBrowse},
			{"q", "Quit", ActionQuit},
		},
	}
}

func filterMenu() menu {
	return menu{
		title: "FIND ENTRIES",
		items: []menuItem{
			{"e", "Find by employee", ActionByEmployee},
			{"d", "Find by date", ActionByDate},
			{"t", "Find by time spent", ActionByMinutes},
			{"s", "Find by search term", ActionBySearch},
			{"a", "Show all entries", ActionAll},
			{"m", "Return to main menu", ActionMainMenu},
			{"q", "Quit", ActionQuit},
		},
	}
}

func walkMenu() menu {
	return menu{
		items: []menuItem{
			{"n", "Next", ActionNext},
			{"d", "Delete", ActionDelete},
			{"m", "Main menu", ActionMainMenu},
			{"q", "Quit", ActionQuit},
		},
	}
}

// transition returns the state that follows s when the user picks a. It
// describes the nominal path only; handlers may still fall back to
// StateRoot when there is nothing to show. Unrecognised actions keep the
// current state so its menu is printed again.
func transition(s State, a Action) State {
	if a == ActionQuit {
		return StateExit
	}
	if a == ActionMainMenu {
		return StateRoot
	}
	switch s {
	case StateRoot:
		switch a {
		case ActionAdd:
			return StateAddEntry
		case ActionBrowse:
			return StateFilterSelect
		}
	case StateFilterSelect:
		switch a {
		case ActionByEmployee, ActionByDate, ActionByMinutes:
			return StateValuePick
		case ActionBySearch, ActionAll:
			return StateResultWalk
		}
	case StateValuePick:
		if a == ActionSelect {
			return StateResultWalk
		}
	case StateResultWalk:
		switch a {
		case ActionNext, ActionDelete:
			return StateResultWalk
		}
	}
	return s
}
