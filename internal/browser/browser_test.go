package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesH0use/Work-Log-Database/internal/model"
	"github.com/WesH0use/Work-Log-Database/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "worklog.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *storage.Store, fields ...model.Fields) {
	t.Helper()
	for _, f := range fields {
		_, err := s.Create(context.Background(), f)
		require.NoError(t, err)
	}
}

func entry(employee, task string, minutes int, day int, notes string) model.Fields {
	return model.Fields{
		EmployeeName: employee,
		TaskName:     task,
		MinutesSpent: minutes,
		TaskDate:     model.Date{Year: 2026, Month: time.January, Day: day},
		Notes:        notes,
	}
}

// runSession runs a complete session over the scripted input and returns
// what was written to the terminal.
func runSession(t *testing.T, store RecordStore, input string, opts ...Option) (*Browser, string) {
	t.Helper()
	var out bytes.Buffer
	b := New(store, strings.NewReader(input), &out, opts...)
	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, StateExit, b.State())
	return b, out.String()
}

func TestQuitFromRoot(t *testing.T) {
	_, out := runSession(t, openStore(t), "q\n")
	assert.Contains(t, out, "WORK LOG")
	assert.Contains(t, out, "a) Add new entry")
}

func TestEndOfInputEndsSession(t *testing.T) {
	_, out := runSession(t, openStore(t), "")
	assert.Equal(t, 1, strings.Count(out, "WORK LOG"))
}

func TestUnknownKeyReprintsMenu(t *testing.T) {
	_, out := runSession(t, openStore(t), "x\n\nq\n")
	assert.Equal(t, 3, strings.Count(out, "WORK LOG"))
}

func TestAddEntryRepromptsForMinutes(t *testing.T) {
	s := openStore(t)
	_, out := runSession(t, s, "a\nAnn\nDocs\nabc\n-3\n45\n02/27/2026\nsome notes\nq\n")

	assert.Equal(t, 3, strings.Count(out, "Minutes spent: "))
	assert.Contains(t, out, "enter a whole number of minutes")
	assert.Contains(t, out, "must not be negative")
	assert.Contains(t, out, "Entry saved.")

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.Fields{
		EmployeeName: "Ann",
		TaskName:     "Docs",
		MinutesSpent: 45,
		TaskDate:     model.Date{Year: 2026, Month: time.February, Day: 27},
		Notes:        "some notes",
	}, all[0].Fields())
}

func TestAddEntryRepromptsForNameAndDate(t *testing.T) {
	s := openStore(t)
	_, out := runSession(t, s, "a\n\n   \nAnn\nTask\n10\n2026-02-27\n13/40/2026\n02/27/2026\n\nq\n")

	assert.Equal(t, 3, strings.Count(out, "Employee name: "))
	assert.Equal(t, 3, strings.Count(out, "Date of the task (MM/DD/YYYY): "))
	assert.Contains(t, out, "use the format MM/DD/YYYY")

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ann", all[0].EmployeeName)
	assert.Empty(t, all[0].Notes)
}

func TestAddEntryKeepsLongNotes(t *testing.T) {
	s := openStore(t)
	notes := strings.Repeat("n", 70<<10)
	runSession(t, s, "a\nAnn\nDocs\n15\n01/02/2026\n"+notes+"\nq\n")

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Notes, 70<<10)
}

func TestOverlongAnswerIsAskedAgain(t *testing.T) {
	s := openStore(t)
	tooLong := strings.Repeat("x", maxInputLine+1)
	_, out := runSession(t, s, "a\n"+tooLong+"\nAnn\nDocs\n15\n01/02/2026\n\nq\n")

	assert.Equal(t, 2, strings.Count(out, "Employee name: "))
	assert.Contains(t, out, "invalid input: answer is longer than")
	assert.Contains(t, out, "Entry saved.")

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ann", all[0].EmployeeName)
}

func TestAddEntryInterruptedWritesNothing(t *testing.T) {
	s := openStore(t)
	runSession(t, s, "a\nAnn\nDocs\n15\n")

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBrowseEmptyStore(t *testing.T) {
	_, out := runSession(t, openStore(t), "b\nq\n")

	assert.Contains(t, out, "The database is empty.")
	assert.NotContains(t, out, "FIND ENTRIES")
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))
}

func TestFindByEmployee(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "Write docs", 30, 2, ""),
		entry("Ann", "Review", 15, 1, ""),
		entry("Bob", "Deploy", 60, 3, ""),
	)

	_, out := runSession(t, s, "b\ne\n1\nn\nn\nq\n")

	assert.Contains(t, out, "Choose an employee")
	assert.Contains(t, out, "1) Ann\n2) Bob\n")
	assert.Contains(t, out, "Entry 1 of 2")
	assert.Contains(t, out, "Entry 2 of 2")
	assert.Less(t, strings.Index(out, "Write docs"), strings.Index(out, "Review"))
	assert.NotContains(t, out, "Deploy")
	assert.Contains(t, out, "No more entries.")
}

func TestFindByEmployeeMatchesWholeName(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "AnnTask", 10, 1, ""),
		entry("Annabel", "AnnabelTask", 10, 2, ""),
		entry("JOANN", "JoannTask", 10, 3, ""),
	)

	_, out := runSession(t, s, "b\ne\n1\nm\nq\n")

	assert.Contains(t, out, "1) Ann\n2) Annabel\n3) JOANN\n")
	assert.Contains(t, out, "Entry 1 of 1")
	assert.Contains(t, out, "AnnTask")
	assert.NotContains(t, out, "AnnabelTask")
	assert.NotContains(t, out, "JoannTask")
}

func TestValuePickRejectsBadIndex(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Write docs", 30, 2, ""), entry("Bob", "Deploy", 60, 3, ""))

	_, out := runSession(t, s, "b\ne\n0\n3\nx\n2\nm\nq\n")

	assert.Equal(t, 3, strings.Count(out, "enter a number between 1 and 2"))
	assert.Contains(t, out, "Entry 1 of 1")
	assert.Contains(t, out, "Deploy")
	assert.NotContains(t, out, "Write docs")
}

func TestValuePickBackToMainMenu(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Write docs", 30, 2, ""))

	_, out := runSession(t, s, "b\nt\nm\nq\n")
	assert.Contains(t, out, "Choose a time spent")
	assert.Contains(t, out, "1) 30 minutes")
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))
}

func TestFindByDateIsExact(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "First", 10, 1, ""),
		entry("Ann", "Eleventh", 10, 11, ""),
	)

	_, out := runSession(t, s, "b\nd\n2\nn\nq\n")

	assert.Contains(t, out, "1) 01/11/2026\n2) 01/01/2026\n")
	assert.Contains(t, out, "Entry 1 of 1")
	assert.Contains(t, out, "First")
	assert.NotContains(t, out, "Eleventh")
}

func TestFindByMinutes(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "Short", 5, 1, ""),
		entry("Bob", "Long", 50, 2, ""),
	)

	_, out := runSession(t, s, "b\nt\n1\nm\nq\n")
	assert.Contains(t, out, "Short")
	assert.Contains(t, out, "5 minutes (5m)")
	assert.NotContains(t, out, "Long")
}

func TestSearchTerm(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "Budget", 10, 1, ""),
		entry("Bob", "Call", 10, 2, "discussed the budget"),
		entry("Cy", "Lunch", 10, 3, ""),
	)

	_, out := runSession(t, s, "b\ns\nbudget\nn\nn\nq\n")

	assert.Contains(t, out, "Entry 1 of 2")
	assert.Contains(t, out, "Entry 2 of 2")
	assert.NotContains(t, out, "Lunch")
}

func TestSearchBlankTermBacksOut(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Budget", 10, 1, ""))

	b, out := runSession(t, s, "b\ns\n\nm\nq\n")

	assert.Equal(t, 2, strings.Count(out, "FIND ENTRIES"))
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))
	assert.NotContains(t, out, "Entry 1 of")
	assert.Equal(t, StateExit, b.State())
}

func TestSearchWithoutMatches(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Budget", 10, 1, ""))

	_, out := runSession(t, s, "b\ns\nzzz\nq\n")

	assert.Contains(t, out, `No entries found matching "zzz".`)
	assert.NotContains(t, out, "Entry 1 of")
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))
}

func TestDeleteConfirmed(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "Older", 10, 1, ""),
		entry("Ann", "Newer", 10, 2, ""),
	)

	_, out := runSession(t, s, "b\na\nd\nY\nm\nq\n")

	assert.Contains(t, out, "Entry deleted.")
	assert.Contains(t, out, "Entry 1 of 1")

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Older", all[0].TaskName)
}

func TestDeleteDeclinedKeepsPosition(t *testing.T) {
	s := openStore(t)
	seed(t, s,
		entry("Ann", "Older", 10, 1, ""),
		entry("Ann", "Newer", 10, 2, ""),
	)

	_, out := runSession(t, s, "b\na\nd\nmaybe\nn\nm\nq\n")

	assert.Contains(t, out, "answer y or n")
	assert.Contains(t, out, "Entry kept.")
	assert.Equal(t, 2, strings.Count(out, "Entry 1 of 2"))
	assert.NotContains(t, out, "Entry 2 of 2")

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDeleteLastResultReturnsToRoot(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Only", 10, 1, ""))

	_, out := runSession(t, s, "b\na\nd\ny\nq\n")

	assert.Contains(t, out, "Entry deleted. No more entries.")
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

// vanishingStore reports every entry as already deleted.
type vanishingStore struct {
	*storage.Store
}

func (vanishingStore) Delete(_ context.Context, id string) error {
	return fmt.Errorf("delete %s: %w", id, storage.ErrNotFound)
}

func TestDeleteVanishedEntry(t *testing.T) {
	s := openStore(t)
	seed(t, s, entry("Ann", "Only", 10, 1, ""))

	_, out := runSession(t, vanishingStore{s}, "b\na\nd\ny\nq\n")

	assert.Contains(t, out, "That entry no longer exists.")
	assert.Equal(t, 2, strings.Count(out, "WORK LOG"))
}

// brokenStore fails every count with a persistence error.
type brokenStore struct {
	*storage.Store
}

func (brokenStore) Count(context.Context) (int, error) {
	return 0, &storage.PersistenceError{Op: "count", Err: errors.New("disk I/O error")}
}

func TestPersistenceErrorEndsSession(t *testing.T) {
	var out bytes.Buffer
	b := New(brokenStore{openStore(t)}, strings.NewReader("b\nq\n"), &out)

	err := b.Run(context.Background())
	var perr *storage.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "count", perr.Op)
	assert.Equal(t, StateFilterSelect, b.State())
}

func TestOnceAddExitsAfterSaving(t *testing.T) {
	s := openStore(t)
	_, out := runSession(t, s, "Ann\nDocs\n5\n01/01/2026\n\n",
		WithStartState(StateAddEntry), Once())

	assert.Contains(t, out, "NEW ENTRY")
	assert.Contains(t, out, "Entry saved.")
	assert.NotContains(t, out, "WORK LOG")

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOnceSearchOnEmptyStore(t *testing.T) {
	_, out := runSession(t, openStore(t), "",
		WithStartState(StateFilterSelect), Once())

	assert.Contains(t, out, "The database is empty.")
	assert.NotContains(t, out, "WORK LOG")
}

func TestClearScreen(t *testing.T) {
	_, out := runSession(t, openStore(t), "q\n", WithClearScreen(true))
	assert.True(t, strings.HasPrefix(out, "\033[H\033[2J"))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	b := New(openStore(t), strings.NewReader("q\n"), &out)
	assert.ErrorIs(t, b.Run(ctx), context.Canceled)
}
