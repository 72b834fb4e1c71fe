package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smokyabdulrahman/praytime/internal/config"
	"github.com/smokyabdulrahman/praytime/internal/display"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude       float64
	FlagLongitude      float64
	FlagTimeZone       float64
	FlagMethod         string
	FlagAsr            string
	FlagHighLat        string
	FlagTimeFormat     string
	FlagDhuhrMinutes   float64
	FlagFajrAngle      float64
	FlagMaghribAngle   float64
	FlagMaghribMinutes float64
	FlagIshaAngle      float64
	FlagIshaMinutes    float64
	FlagJSON           bool
	FlagVerbose        bool
	FlagColor          string
)

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"latitude":        "latitude",
	"longitude":       "longitude",
	"timezone":        "timezone",
	"method":          "method",
	"asr":             "asr",
	"high-lat":        "high_lat",
	"time-format":     "time_format",
	"dhuhr-minutes":   "dhuhr_minutes",
	"fajr-angle":      "fajr_angle",
	"maghrib-angle":   "maghrib_angle",
	"maghrib-minutes": "maghrib_minutes",
	"isha-angle":      "isha_angle",
	"isha-minutes":    "isha_minutes",
	"prayers":         "prayers",
}

// loadedConfig holds the config loaded during PersistentPreRunE, with
// environment overrides applied. Available to all subcommand handlers.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the prayer-times CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "prayer-times",
		Short:   "Islamic prayer times CLI",
		Long:    "A CLI for Islamic prayer times, computed locally from the position of the sun.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := display.ParseMode(FlagColor)
			if err != nil {
				return fmt.Errorf("--color: %w", err)
			}
			display.Configure(mode, cmd.OutOrStdout())
			setupLogging(cmd.ErrOrStderr(), FlagVerbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ApplyEnv(config.DotEnvFile); err != nil {
				return fmt.Errorf("failed to apply environment: %w", err)
			}
			loadedConfig = cfg
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Latitude in degrees, north positive")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Longitude in degrees, east positive")
	pf.Float64Var(&FlagTimeZone, "timezone", 0, "UTC offset in hours (default: system offset for each date)")
	pf.StringVar(&FlagMethod, "method", "", "Calculation method, id (0-7) or name (see 'methods')")
	pf.StringVar(&FlagAsr, "asr", "", "Asr method: 0/shafii or 1/hanafi")
	pf.StringVar(&FlagHighLat, "high-lat", "", "High latitude adjustment: none, midnight, one-seventh, angle-based")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 24h, 12h, 12hNS or float")
	pf.Float64Var(&FlagDhuhrMinutes, "dhuhr-minutes", 0, "Minutes added to solar noon for Dhuhr")
	pf.Float64Var(&FlagFajrAngle, "fajr-angle", 0, "Custom Fajr twilight angle")
	pf.Float64Var(&FlagMaghribAngle, "maghrib-angle", 0, "Custom Maghrib twilight angle")
	pf.Float64Var(&FlagMaghribMinutes, "maghrib-minutes", 0, "Custom Maghrib minutes after sunset")
	pf.Float64Var(&FlagIshaAngle, "isha-angle", 0, "Custom Isha twilight angle")
	pf.Float64Var(&FlagIshaMinutes, "isha-minutes", 0, "Custom Isha minutes after Maghrib")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Log calculation details to stderr")
	pf.StringVar(&FlagColor, "color", "auto", "Colored output: auto, always or never")

	rootCmd.MarkFlagsMutuallyExclusive("maghrib-angle", "maghrib-minutes")
	rootCmd.MarkFlagsMutuallyExclusive("isha-angle", "isha-minutes")

	// Register subcommands.
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("prayer-times %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > environment > config file > defaults.
// Flags that were explicitly set are applied through config.Set so they
// get the same validation as `config set`.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Config{}
	if loadedConfig != nil {
		cfg = *loadedConfig
	}

	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if serr := cfg.Set(key, f.Value.String()); serr != nil {
			err = fmt.Errorf("--%s: %w", f.Name, serr)
		}
	})
	if err != nil {
		return nil, err
	}

	if cfg.TimeFormat == "" {
		cfg.TimeFormat = config.Defaults().TimeFormat
	}
	log.Debug().Str("prayers", strings.Join(cfg.PrayerList(nil), ",")).
		Str("time_format", cfg.TimeFormat).Msg("effective config")
	return &cfg, nil
}
