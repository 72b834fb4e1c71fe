package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/display"
	"github.com/smokyabdulrahman/praytime/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	now := s.now()
	today, err := s.day(now, s.prayers)
	if err != nil {
		return err
	}

	// Find current and next prayers.
	current := prayer.CurrentPrayer(today.Prayers, now)
	next := prayer.NextPrayer(today.Prayers, now)

	out := cmd.OutOrStdout()
	if FlagJSON {
		return printTodayJSON(out, s, today, current, next, now)
	}

	printTodayRich(out, s, today, current, next, now)
	return nil
}

// printTodayRich renders the colored terminal output for today's prayer schedule.
func printTodayRich(w io.Writer, s *session, today daySchedule, current, next *prayer.Prayer, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Prayer Times"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s\n", s.locationLabel())
	fmt.Fprintf(w, "  %s\n", today.Zone)
	fmt.Fprintf(w, "  %s\n", today.Date.Format("Monday 02 January 2006"))
	fmt.Fprintf(w, "  %s\n", display.Gray(s.methodLabel()))
	fmt.Fprintln(w)

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, p := range today.Prayers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	for _, p := range today.Prayers {
		timeStr := s.cell(today, p.Name)
		line := fmt.Sprintf("  %s  %s", padRight(p.Name, maxNameLen), timeStr)

		switch {
		case !p.Valid():
			fmt.Fprintln(w, display.Dim(line))
		case current != nil && p.Name == current.Name:
			// Current prayer: dimmed.
			fmt.Fprintln(w, display.Dim(line))
		case next != nil && p.Name == next.Name:
			// Next prayer: accent color + countdown.
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(p, now))
			suffix := fmt.Sprintf("  <- next in %s", remaining)
			fmt.Fprintln(w, display.Accent(line)+display.Accent(suffix))
		default:
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
}

// padRight pads a string to the given width with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location jsonLocation      `json:"location"`
	Date     string            `json:"date"`
	Method   string            `json:"method"`
	Timings  map[string]string `json:"timings"`
	Current  string            `json:"current"`
	Next     *todayJSONNext    `json:"next"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(w io.Writer, s *session, today daySchedule, current, next *prayer.Prayer, now time.Time) error {
	timings := make(map[string]string)
	for _, p := range today.Prayers {
		timings[strings.ToLower(p.Name)] = s.cell(today, p.Name)
	}

	out := todayJSON{
		Location: s.jsonLocation(today.Zone),
		Date:     today.Date.Format(time.DateOnly),
		Method:   s.engine.Method.String(),
		Timings:  timings,
	}

	if current != nil {
		out.Current = strings.ToLower(current.Name)
	}

	if next != nil {
		remaining := prayer.FormatRemaining(prayer.TimeRemaining(*next, now))
		out.Next = &todayJSONNext{
			Prayer:    strings.ToLower(next.Name),
			Time:      s.cell(today, next.Name),
			Remaining: remaining,
		}
	}

	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
