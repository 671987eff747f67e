package browser

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/WesH0use/Work-Log-Database/internal/model"
	"github.com/WesH0use/Work-Log-Database/internal/storage"
	"github.com/WesH0use/Work-Log-Database/internal/timecalc"
)

// resultWalk shows the current result and handles next, delete and
// main-menu commands. Running past the last result returns to the root menu.
func (b *Browser) resultWalk(ctx context.Context) (State, error) {
	if b.pos >= len(b.results) {
		b.flash("No more entries.")
		return StateRoot, nil
	}

	m := walkMenu()
	b.screen()
	fmt.Fprintln(b.out, b.styles.title.Render(fmt.Sprintf("Entry %d of %d", b.pos+1, len(b.results))))
	b.printRecord(b.results[b.pos])
	fmt.Fprintln(b.out)
	opts := make([]string, len(m.items))
	for i, it := range m.items {
		opts[i] = fmt.Sprintf("%s) %s", b.styles.key.Render(it.key), it.label)
	}
	fmt.Fprintln(b.out, strings.Join(opts, "  "))

	input, err := b.prompt("> ")
	if err != nil {
		return b.state, err
	}
	a := m.action(input)
	switch a {
	case ActionNext:
		b.pos++
		if b.pos >= len(b.results) {
			b.flash("No more entries.")
			return StateRoot, nil
		}
	case ActionDelete:
		return b.deleteCurrent(ctx)
	}
	return transition(StateResultWalk, a), nil
}

// deleteCurrent asks for confirmation and deletes the entry on screen. After
// a deletion the walk continues with the following entry; a refusal leaves
// the walk where it is.
func (b *Browser) deleteCurrent(ctx context.Context) (State, error) {
	ok, err := b.confirm("Delete this entry? [y/n] ")
	if err != nil {
		return b.state, err
	}
	if !ok {
		b.flash("Entry kept.")
		return StateResultWalk, nil
	}

	r := b.results[b.pos]
	if err := b.store.Delete(ctx, r.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.flash("That entry no longer exists.")
			return StateRoot, nil
		}
		return b.state, err
	}

	b.results = slices.Delete(b.results, b.pos, b.pos+1)
	if b.pos >= len(b.results) {
		b.flash("Entry deleted. No more entries.")
		return StateRoot, nil
	}
	b.flash("Entry deleted.")
	return transition(StateResultWalk, ActionDelete), nil
}

func (b *Browser) confirm(label string) (bool, error) {
	for {
		input, err := b.prompt(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		b.invalid(errors.New("answer y or n"))
	}
}

func (b *Browser) printRecord(r model.Record) {
	rows := []struct{ label, value string }{
		{"Date", r.TaskDate.String()},
		{"Employee", r.EmployeeName},
		{"Task", r.TaskName},
		{"Time spent", fmt.Sprintf("%d minutes (%s)", r.MinutesSpent, timecalc.FormatMinutes(r.MinutesSpent))},
		{"Notes", r.Notes},
	}
	for _, row := range rows {
		fmt.Fprintf(b.out, "%s %s\n", b.styles.label.Render(fmt.Sprintf("%-11s", row.label+":")), row.value)
	}
}
