package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/WesH0use/Work-Log-Database/internal/model"
	"github.com/WesH0use/Work-Log-Database/internal/timecalc"
)

var (
	reportWeek   bool
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show total time spent per employee",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "Only count entries dated in the current week")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

// employeeTotal is one line of the report.
type employeeTotal struct {
	Employee string `json:"employee"`
	Entries  int    `json:"entries"`
	Minutes  int    `json:"minutes"`
}

type report struct {
	Label        string          `json:"label"`
	Employees    []employeeTotal `json:"employees"`
	TotalMinutes int             `json:"total_minutes"`
}

func runReport(cmd *cobra.Command, args []string) error {
	records, err := store.All(cmd.Context())
	if err != nil {
		return err
	}

	label := "All time"
	if reportWeek {
		now := time.Now()
		from, to := timecalc.WeekRange(now)
		records = between(records, model.DateOf(from), model.DateOf(to))
		label = "Week " + timecalc.ISOWeekLabel(now)
	}
	return writeReport(cmd.OutOrStdout(), reportFormat, buildReport(label, records))
}

// between keeps the records dated within [from, to].
func between(records []model.Record, from, to model.Date) []model.Record {
	var out []model.Record
	for _, r := range records {
		if r.TaskDate.Before(from) || to.Before(r.TaskDate) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func buildReport(label string, records []model.Record) report {
	totals := map[string]*employeeTotal{}
	for _, r := range records {
		t, ok := totals[r.EmployeeName]
		if !ok {
			t = &employeeTotal{Employee: r.EmployeeName}
			totals[r.EmployeeName] = t
		}
		t.Entries++
		t.Minutes += r.MinutesSpent
	}

	rep := report{Label: label, Employees: []employeeTotal{}}
	for _, t := range totals {
		rep.Employees = append(rep.Employees, *t)
		rep.TotalMinutes += t.Minutes
	}
	sort.Slice(rep.Employees, func(i, j int) bool {
		return rep.Employees[i].Employee < rep.Employees[j].Employee
	})
	return rep
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "csv":
		return writeReportCSV(w, rep)
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		fmt.Fprintln(w, rep.Label)
		fmt.Fprintln(w, "--------------------------------")
		for _, e := range rep.Employees {
			fmt.Fprintf(w, "%-20s%s\n", e.Employee, timecalc.FormatMinutes(e.Minutes))
		}
		fmt.Fprintln(w, "--------------------------------")
		fmt.Fprintf(w, "%-20s%s\n", "Total", timecalc.FormatMinutes(rep.TotalMinutes))
	default:
		return fmt.Errorf("unknown format %q (want md, csv or json)", format)
	}
	return nil
}

func writeReportCSV(w io.Writer, rep report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"employee", "entries", "minutes"}); err != nil {
		return err
	}
	for _, e := range rep.Employees {
		if err := cw.Write([]string{e.Employee, strconv.Itoa(e.Entries), strconv.Itoa(e.Minutes)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
