package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/prayer"
)

var (
	flagFormat  string
	flagPrayers string
)

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nThe output is a single line, suitable for status bars such as tmux.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatFull, "Display format: "+strings.Join(prayer.Formats, ", ")+", or a Go template (fields: .Name .ShortName .Time .Date .Tomorrow .Remaining .Hours .Minutes)")
	cmd.Flags().StringVar(&flagPrayers, "prayers", "", "Comma-separated list of prayers to track (overrides config)")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	f, err := prayer.NewFormatter(flagFormat, s.engine.Format)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}

	now := s.now()
	today, err := s.day(now, s.prayers)
	if err != nil {
		return err
	}

	next := prayer.NextPrayer(today.Prayers, now)

	// If all today's prayers have passed, use tomorrow's first prayer.
	if next == nil {
		tomorrow, err := s.day(today.Date.AddDate(0, 0, 1), s.prayers)
		if err != nil {
			return err
		}
		next = prayer.NextPrayer(tomorrow.Prayers, now)
	}

	if next == nil {
		return fmt.Errorf("could not determine next prayer")
	}

	line, err := f.Format(*next, now)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), line)
	return nil
}
