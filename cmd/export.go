package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/WesH0use/Work-Log-Database/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all work log entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, md")
}

func runExport(cmd *cobra.Command, args []string) error {
	records, err := store.All(cmd.Context())
	if err != nil {
		return err
	}
	return writeRecords(cmd.OutOrStdout(), exportFormat, records)
}

func writeRecords(w io.Writer, format string, records []model.Record) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		return enc.Close()
	case "md":
		return writeMarkdown(w, records)
	case "csv":
		return writeCSV(w, records)
	default:
		return fmt.Errorf("unknown format %q (want csv, json, yaml or md)", format)
	}
}

func writeCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "employee", "task", "minutes", "notes"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.TaskDate.String(),
			r.EmployeeName,
			r.TaskName,
			strconv.Itoa(r.MinutesSpent),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeMarkdown prints entries as a table grouped by date, newest first.
func writeMarkdown(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No entries found.")
		return err
	}

	var currentDay string
	for _, r := range records {
		day := r.TaskDate.String()
		if day != currentDay {
			if currentDay != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "## %s\n\n", day)
			fmt.Fprintln(w, "| Employee | Task | Minutes | Notes |")
			fmt.Fprintln(w, "|---|---|---|---|")
			currentDay = day
		}
		fmt.Fprintf(w, "| %s | %s | %d | %s |\n",
			mdEscape(r.EmployeeName), mdEscape(r.TaskName), r.MinutesSpent, mdEscape(r.Notes))
	}
	return nil
}

// mdEscape keeps a value on one table row.
func mdEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ").Replace(s)
}
