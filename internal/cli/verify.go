package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/display"
	"github.com/smokyabdulrahman/praytime/internal/prayer"
	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

// verifyTolerance is the largest sunrise/sunset difference, in minutes,
// reported as agreeing with the reference.
const verifyTolerance = 4.0

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [YYYY-MM-DD]",
		Short: "Compare sunrise and sunset with an independent calculation",
		Long: "Compute Sunrise and Sunset for the configured location and date (default: today)\n" +
			"and compare them with the NOAA-based go-sunrise library. Differences above\n" +
			fmt.Sprintf("%g minutes usually mean a wrong longitude or UTC offset.", verifyTolerance),
		Args: cobra.MaximumNArgs(1),
		RunE: runVerify,
	}
}

// verifyRow compares one event with the reference.
type verifyRow struct {
	Event     string   `json:"event"`
	Engine    string   `json:"engine"`
	Reference string   `json:"reference"`
	Diff      *float64 `json:"diff_minutes"`
}

func (r verifyRow) ok() bool {
	return r.Diff != nil && math.Abs(*r.Diff) <= verifyTolerance
}

func runVerify(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	day := s.now()
	if len(args) == 1 {
		d, err := time.Parse(time.DateOnly, args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", args[0])
		}
		day = d
	}

	rows, ds, err := s.verify(day)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(out, struct {
			Location jsonLocation `json:"location"`
			Date     string       `json:"date"`
			Rows     []verifyRow  `json:"rows"`
		}{s.jsonLocation(ds.Zone), ds.Date.Format(time.DateOnly), rows})
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Bold("Sunrise / Sunset Check"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", s.locationLabel())
	fmt.Fprintf(out, "  %s, %s\n", ds.Date.Format("Monday 02 January 2006"), ds.Zone)
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"Event", "Engine", "Reference", "Diff"})
	tbl.SetMuted(praytime.InvalidTime)
	for _, r := range rows {
		diff := praytime.InvalidTime
		if r.Diff != nil {
			diff = fmt.Sprintf("%+.1f min", *r.Diff)
		}
		tbl.AddRow([]string{r.Event, r.Engine, r.Reference, diff})
	}
	fmt.Fprint(out, tbl.Render())
	fmt.Fprintln(out)

	for _, r := range rows {
		if !r.ok() {
			fmt.Fprintf(out, "  %s\n\n", display.Yellow("Results differ; check latitude, longitude and timezone."))
			return nil
		}
	}
	fmt.Fprintf(out, "  %s\n\n", display.Green("OK"))
	return nil
}

// verify computes Sunrise and Sunset for the day of t with the engine and
// with go-sunrise.
func (s *session) verify(t time.Time) ([]verifyRow, daySchedule, error) {
	names := []string{praytime.Sunrise.String(), praytime.Sunset.String()}
	ds, err := s.day(t, names)
	if err != nil {
		return nil, ds, err
	}

	y, m, d := ds.Date.Date()
	rise, set := sunrise.SunriseSunset(s.lat, s.lng, y, m, d)
	refs := []time.Time{rise, set}

	rows := make([]verifyRow, len(names))
	for i, p := range ds.Prayers {
		rows[i] = verifyRow{
			Event:     p.Name,
			Engine:    prayer.FormatClock(p, praytime.Time24),
			Reference: praytime.InvalidTime,
		}
		ref := refs[i]
		if ref.IsZero() {
			continue
		}
		ref = ref.In(ds.Zone)
		rows[i].Reference = ref.Format("15:04")
		if p.Valid() {
			diff := math.Round(p.Time.Sub(ref).Minutes()*10) / 10
			rows[i].Diff = &diff
		}
	}

	for _, r := range rows {
		if !r.ok() {
			log.Warn().Str("event", r.Event).Str("engine", r.Engine).
				Str("reference", r.Reference).Msg("sunrise/sunset disagree with reference")
		}
	}
	return rows, ds, nil
}
