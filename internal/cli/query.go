package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/display"
	"github.com/smokyabdulrahman/praytime/internal/prayer"
	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long: "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: " +
			strings.Join(prayer.AllPrayerNames, ", "),
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	e, err := praytime.ParseEvent(args[0])
	if err != nil {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(prayer.AllPrayerNames, ", "))
	}
	prayerName := e.String()

	days := 1
	if flagQueryDays != "" {
		if days, err = parseDays(flagQueryDays); err != nil {
			return fmt.Errorf("invalid --days value: %w", err)
		}
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	now := s.now()
	names := []string{prayerName}
	daysList, err := s.days(now, days, names)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Single day: one line.
	if days == 1 {
		dd := daysList[0]
		timeStr := s.cell(dd, prayerName)
		if FlagJSON {
			return writeJSON(out, queryJSONSingle{
				Prayer: strings.ToLower(prayerName),
				Time:   timeStr,
				Date:   dd.Date.Format(time.DateOnly),
			})
		}
		fmt.Fprintf(out, "%s %s\n", prayerName, timeStr)
		return nil
	}

	if FlagJSON {
		res := queryJSONMulti{
			Location: s.jsonLocation(daysList[0].Zone),
			Prayer:   strings.ToLower(prayerName),
		}
		for _, dd := range daysList {
			res.Days = append(res.Days, queryJSONDay{
				Date: dd.Date.Format(time.DateOnly),
				Time: s.cell(dd, prayerName),
			})
		}
		return writeJSON(out, res)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Boldf("%s Times - %d Days", prayerName, days))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", s.locationLabel())
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"Date", prayerName})
	tbl.SetMuted(praytime.InvalidTime)

	todayStr := now.Format(time.DateOnly)
	for i, dd := range daysList {
		tbl.AddRow([]string{dd.Date.Format("Mon 02 Jan"), s.cell(dd, prayerName)})
		if dd.Date.Format(time.DateOnly) == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(out, tbl.Render())
	fmt.Fprintln(out)
	return nil
}

type queryJSONSingle struct {
	Prayer string `json:"prayer"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}

type queryJSONMulti struct {
	Location jsonLocation   `json:"location"`
	Prayer   string         `json:"prayer"`
	Days     []queryJSONDay `json:"days"`
}

type queryJSONDay struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
