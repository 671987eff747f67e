package browser

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/WesH0use/Work-Log-Database/internal/model"
)

// filterSelect shows the filter menu. An empty store sends the user straight
// back to the root menu.
func (b *Browser) filterSelect(ctx context.Context) (State, error) {
	n, err := b.store.Count(ctx)
	if err != nil {
		return b.state, err
	}
	if n == 0 {
		b.flash("The database is empty. Add an entry first.")
		return StateRoot, nil
	}

	m := filterMenu()
	b.render(m)
	input, err := b.prompt("> ")
	if err != nil {
		return b.state, err
	}
	a := m.action(input)
	next := transition(StateFilterSelect, a)

	var ok bool
	switch a {
	case ActionByEmployee:
		ok, err = b.loadValues(ctx, model.FieldEmployee)
	case ActionByDate:
		ok, err = b.loadValues(ctx, model.FieldDate)
	case ActionByMinutes:
		ok, err = b.loadValues(ctx, model.FieldMinutes)
	case ActionBySearch:
		return b.search(ctx)
	case ActionAll:
		ok, err = b.showAll(ctx)
	default:
		return next, nil
	}
	if err != nil {
		return b.state, err
	}
	if !ok {
		return StateRoot, nil
	}
	return next, nil
}

// loadValues prepares the distinct-value menu for field.
func (b *Browser) loadValues(ctx context.Context, field model.Field) (bool, error) {
	values, err := b.store.DistinctValues(ctx, field)
	if err != nil {
		return false, err
	}
	if len(values) == 0 {
		b.flash("No entries found.")
		return false, nil
	}
	b.field = field
	b.values = values
	return true, nil
}

// search asks for a term and walks the entries containing it. A blank term
// goes back to the filter menu.
func (b *Browser) search(ctx context.Context) (State, error) {
	term, err := b.prompt("Search term (blank to go back): ")
	if err != nil {
		return b.state, err
	}
	if term == "" {
		return StateFilterSelect, nil
	}

	records, err := b.store.Search(ctx, term)
	if err != nil {
		return b.state, err
	}
	if !b.startWalk(records) {
		b.flash("No entries found matching %q.", term)
		return StateRoot, nil
	}
	return StateResultWalk, nil
}

func (b *Browser) showAll(ctx context.Context) (bool, error) {
	records, err := b.store.All(ctx)
	if err != nil {
		return false, err
	}
	if !b.startWalk(records) {
		b.flash("The database is empty. Add an entry first.")
		return false, nil
	}
	return true, nil
}

func pickMenu() menu {
	return menu{
		items: []menuItem{
			{"m", "Return to main menu", ActionMainMenu},
			{"q", "Quit", ActionQuit},
		},
	}
}

func pickTitle(f model.Field) string {
	switch f {
	case model.FieldEmployee:
		return "Choose an employee"
	case model.FieldDate:
		return "Choose a date"
	case model.FieldMinutes:
		return "Choose a time spent"
	default:
		return "Choose a " + f.String()
	}
}

func formatValue(v model.Value) string {
	if v.Field == model.FieldMinutes {
		return fmt.Sprintf("%d minutes", v.Minutes)
	}
	return v.String()
}

// valuePick lists the distinct values of the chosen field, numbered from 1,
// and shows the entries holding exactly the one the user picks. Anything that is not a listed
// number is rejected and asked for again.
func (b *Browser) valuePick(ctx context.Context) (State, error) {
	m := pickMenu()
	b.screen()
	fmt.Fprintln(b.out, b.styles.title.Render(pickTitle(b.field)))
	for i, v := range b.values {
		fmt.Fprintf(b.out, "%s) %s\n", b.styles.key.Render(strconv.Itoa(i+1)), formatValue(v))
	}
	for _, it := range m.items {
		fmt.Fprintf(b.out, "%s) %s\n", b.styles.key.Render(it.key), it.label)
	}

	for {
		input, err := b.prompt("Choose a number: ")
		if err != nil {
			return b.state, err
		}
		if a := m.action(input); a != ActionNone {
			return transition(StateValuePick, a), nil
		}

		i, convErr := strconv.Atoi(input)
		if convErr != nil || i < 1 || i > len(b.values) {
			b.invalid(fmt.Errorf("enter a number between 1 and %d", len(b.values)))
			continue
		}

		v := b.values[i-1].Exactly()
		records, err := b.store.Filter(ctx, v)
		if err != nil {
			return b.state, err
		}
		b.log.Debug("value picked", zap.Stringer("field", v.Field), zap.String("value", v.String()))
		if !b.startWalk(records) {
			b.flash("No entries found for %s %s.", b.field, formatValue(v))
			return StateRoot, nil
		}
		return transition(StateValuePick, ActionSelect), nil
	}
}

// startWalk prepares the result walk over records. It reports false when
// there is nothing to walk.
func (b *Browser) startWalk(records []model.Record) bool {
	if len(records) == 0 {
		return false
	}
	b.results = records
	b.pos = 0
	return true
}
