package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/display"
	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days starting today (default: 7).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 7)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'. Display a grid of prayer times for 7 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'. Display a grid of prayer times for 30 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// maxDays bounds list and query output.
const maxDays = 366

// parseDays parses a positive day count, or "week"/"month".
func parseDays(s string) (int, error) {
	switch s {
	case "week":
		return 7, nil
	case "month":
		return 30, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxDays {
		return 0, fmt.Errorf("invalid number of days: %q (must be 1-%d, 'week', or 'month')", s, maxDays)
	}
	return n, nil
}

// runList is the handler for the list subcommand.
func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := parseDays(args[0])
		if err != nil {
			return err
		}
		days = n
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	now := s.now()
	daysList, err := s.days(now, days, s.prayers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if FlagJSON {
		return printListJSON(out, s, daysList, s.prayers)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Boldf("Prayer Times - %d Days", days))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", s.locationLabel())
	fmt.Fprintf(out, "  %s\n", display.Gray(s.methodLabel()))
	fmt.Fprintln(out)

	headers := append([]string{"Date"}, s.prayers...)
	tbl := display.NewTable(headers)
	tbl.SetMuted(praytime.InvalidTime)

	todayStr := now.Format(time.DateOnly)
	for i, dd := range daysList {
		row := []string{dd.Date.Format("Mon 02 Jan")}
		for _, name := range s.prayers {
			row = append(row, s.cell(dd, name))
		}
		tbl.AddRow(row)

		// Highlight today's row.
		if dd.Date.Format(time.DateOnly) == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(out, tbl.Render())
	fmt.Fprintln(out)
	return nil
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location jsonLocation  `json:"location"`
	Method   string        `json:"method"`
	Days     []listJSONDay `json:"days"`
}

type listJSONDay struct {
	Date     string            `json:"date"`
	Timezone string            `json:"timezone"`
	Timings  map[string]string `json:"timings"`
}

func printListJSON(w io.Writer, s *session, daysList []daySchedule, names []string) error {
	out := listJSONOutput{
		Location: s.jsonLocation(daysList[0].Zone),
		Method:   s.engine.Method.String(),
	}

	for _, dd := range daysList {
		timings := make(map[string]string)
		for _, name := range names {
			timings[strings.ToLower(name)] = s.cell(dd, name)
		}
		out.Days = append(out.Days, listJSONDay{
			Date:     dd.Date.Format(time.DateOnly),
			Timezone: dd.Zone.String(),
			Timings:  timings,
		})
	}

	return writeJSON(w, out)
}
