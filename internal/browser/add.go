package browser

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/WesH0use/Work-Log-Database/internal/model"
)

// addEntry collects every field of a new entry, re-prompting until each one
// is valid, and only then writes the entry.
func (b *Browser) addEntry(ctx context.Context) (State, error) {
	b.screen()
	fmt.Fprintln(b.out, b.styles.title.Render("NEW ENTRY"))

	var (
		f   model.Fields
		err error
	)
	if f.EmployeeName, err = b.askText(model.FieldEmployee, "Employee name: "); err != nil {
		return b.state, err
	}
	if f.TaskName, err = b.askText(model.FieldTask, "Task name: "); err != nil {
		return b.state, err
	}
	if f.MinutesSpent, err = b.askMinutes(); err != nil {
		return b.state, err
	}
	if f.TaskDate, err = b.askDate(); err != nil {
		return b.state, err
	}
	if f.Notes, err = b.prompt("Notes (optional): "); err != nil {
		return b.state, err
	}

	id, err := b.store.Create(ctx, f)
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		b.flash("Entry not saved: %v", verr)
		return StateRoot, nil
	}
	if err != nil {
		return b.state, err
	}
	b.log.Debug("entry added", zap.String("id", id))
	b.flash("Entry saved.")
	return StateRoot, nil
}

func (b *Browser) askText(field model.Field, label string) (string, error) {
	for {
		input, err := b.prompt(label)
		if err != nil {
			return "", err
		}
		s, verr := model.RequireText(field, input)
		if verr == nil {
			return s, nil
		}
		b.invalid(verr)
	}
}

func (b *Browser) askMinutes() (int, error) {
	for {
		input, err := b.prompt("Minutes spent: ")
		if err != nil {
			return 0, err
		}
		m, verr := model.ParseMinutes(input)
		if verr == nil {
			return m, nil
		}
		b.invalid(verr)
	}
}

func (b *Browser) askDate() (model.Date, error) {
	for {
		input, err := b.prompt("Date of the task (MM/DD/YYYY): ")
		if err != nil {
			return model.Date{}, err
		}
		d, verr := model.ParseDate(input)
		if verr == nil {
			return d, nil
		}
		b.invalid(verr)
	}
}
