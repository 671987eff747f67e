package browser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/WesH0use/Work-Log-Database/internal/model"
)

// RecordStore is the part of the work log store used by a session.
// *storage.Store satisfies it.
type RecordStore interface {
	Create(ctx context.Context, f model.Fields) (string, error)
	All(ctx context.Context) ([]model.Record, error)
	Count(ctx context.Context) (int, error)
	DistinctValues(ctx context.Context, field model.Field) ([]model.Value, error)
	Filter(ctx context.Context, v model.Value) ([]model.Record, error)
	Search(ctx context.Context, term string) ([]model.Record, error)
	Delete(ctx context.Context, id string) error
}

// Browser runs one interactive session against a RecordStore.
type Browser struct {
	store  RecordStore
	in     *bufio.Reader
	out    io.Writer
	log    *zap.Logger
	styles styles
	clear  bool
	once   bool

	state  State
	notice string

	// Filter selection and walk position; only meaningful in the states
	// that follow the filter menu.
	field   model.Field
	values  []model.Value
	results []model.Record
	pos     int
}

// Option configures a Browser.
type Option func(*Browser)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Browser) { b.log = l }
}

// WithClearScreen clears the terminal before every menu.
func WithClearScreen(on bool) Option {
	return func(b *Browser) { b.clear = on }
}

// WithColor enables terminal styling.
func WithColor(color bool) Option {
	return func(b *Browser) { b.styles = newStyles(color) }
}

// WithStartState starts the session somewhere other than the root menu.
func WithStartState(s State) Option {
	return func(b *Browser) { b.state = s }
}

// Once ends the session the first time it returns to the root menu.
func Once() Option {
	return func(b *Browser) { b.once = true }
}

// New creates a session reading commands from in and writing to out.
func New(store RecordStore, in io.Reader, out io.Writer, opts ...Option) *Browser {
	b := &Browser{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		log:    zap.NewNop(),
		styles: newStyles(false),
		state:  StateRoot,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the current state of the session.
func (b *Browser) State() State {
	return b.state
}

// Run drives the session until the user quits or input ends. Only
// persistence failures and context cancellation are returned; everything
// else is reported to the user and recovered from.
func (b *Browser) Run(ctx context.Context) error {
	b.log.Debug("session started", zap.Stringer("state", b.state))
	for b.state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := b.step(ctx)
		if errors.Is(err, io.EOF) {
			b.log.Debug("input closed", zap.Stringer("state", b.state))
			next, err = StateExit, nil
		}
		if err != nil {
			b.log.Error("session aborted", zap.Stringer("state", b.state), zap.Error(err))
			return err
		}
		if b.once && next == StateRoot && b.state != StateRoot {
			next = StateExit
		}
		if next != b.state {
			b.log.Debug("transition", zap.Stringer("from", b.state), zap.Stringer("to", next))
		}
		b.state = next
	}
	if b.notice != "" {
		b.printNotice()
	}
	b.log.Debug("session ended")
	return nil
}

func (b *Browser) step(ctx context.Context) (State, error) {
	switch b.state {
	case StateRoot:
		return b.root()
	case StateAddEntry:
		return b.addEntry(ctx)
	case StateFilterSelect:
		return b.filterSelect(ctx)
	case StateValuePick:
		return b.valuePick(ctx)
	case StateResultWalk:
		return b.resultWalk(ctx)
	default:
		return StateExit, fmt.Errorf("unknown state %s", b.state)
	}
}

func (b *Browser) root() (State, error) {
	m := rootMenu()
	b.render(m)
	input, err := b.prompt("> ")
	if err != nil {
		return b.state, err
	}
	return transition(StateRoot, m.action(input)), nil
}

// flash queues a message to be shown above the next menu.
func (b *Browser) flash(format string, args ...any) {
	b.notice = fmt.Sprintf(format, args...)
}

func (b *Browser) printNotice() {
	fmt.Fprintln(b.out, b.styles.notice.Render(b.notice))
	b.notice = ""
}

// screen starts a new screen: clears the terminal when enabled and shows
// the pending notice, if any.
func (b *Browser) screen() {
	if b.clear {
		fmt.Fprint(b.out, "\033[H\033[2J")
	}
	if b.notice != "" {
		b.printNotice()
		fmt.Fprintln(b.out)
	}
}

func (b *Browser) render(m menu) {
	b.screen()
	if m.title != "" {
		fmt.Fprintln(b.out, b.styles.title.Render(m.title))
	}
	for _, it := range m.items {
		fmt.Fprintf(b.out, "%s) %s\n", b.styles.key.Render(it.key), it.label)
	}
}

// maxInputLine bounds a single answer. Longer lines are rejected and asked
// for again.
const maxInputLine = 1 << 20

// prompt prints label and reads one line of input. It returns io.EOF once
// the input is exhausted.
func (b *Browser) prompt(label string) (string, error) {
	for {
		fmt.Fprint(b.out, label)
		line, err := b.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(b.out)
			return "", io.EOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if len(line) > maxInputLine {
			b.invalid(&model.ValidationError{Reason: fmt.Sprintf("answer is longer than %d bytes", maxInputLine)})
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

// invalid reports a rejected answer right under the prompt that produced it.
func (b *Browser) invalid(err error) {
	fmt.Fprintln(b.out, b.styles.invalid.Render("  "+err.Error()))
}
