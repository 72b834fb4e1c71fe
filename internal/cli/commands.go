package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/config"
	"github.com/smokyabdulrahman/praytime/internal/display"
	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long: "Display current configuration, or use subcommands to modify it.\n" +
			"When run without subcommands, shows the stored configuration with\n" +
			"environment overrides (" + config.EnvPrefix + "<KEY>) applied.",
		RunE: runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  prayer-times config set latitude 21.4225\n  prayer-times config set longitude 39.8262\n  prayer-times config set method Makkah\n  prayer-times config set isha_minutes 90\n  prayer-times config set time_format 12h\n  prayer-times config set prayers Fajr,Dhuhr,Asr,Maghrib,Isha",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg := loadedConfig
	if cfg == nil {
		if cfg, err = config.Load(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Configuration (%s)\n\n", path)

	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		shown := val
		switch {
		case val == "":
			shown = display.Dim("(not set)")
		case key == "method":
			shown = formatMethodValue(val)
		case key == "asr":
			shown = formatAsrValue(val)
		case key == "high_lat":
			shown = formatHighLatValue(val)
		}
		fmt.Fprintf(out, "  %-16s %s\n", key, shown)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// Only the file is modified; environment overrides are not persisted.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, stored)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// formatMethodValue adds the method name to the numeric value.
func formatMethodValue(val string) string {
	n, err := strconv.Atoi(val)
	if err != nil || !praytime.Method(n).Valid() {
		return val
	}
	return fmt.Sprintf("%s (%s)", val, praytime.Method(n).Description())
}

// formatAsrValue adds the Asr method name to the numeric value.
func formatAsrValue(val string) string {
	a, err := praytime.ParseAsrMethod(val)
	if err != nil {
		return val
	}
	return fmt.Sprintf("%s (%s)", val, a)
}

// formatHighLatValue adds the adjustment name to the numeric value.
func formatHighLatValue(val string) string {
	h, err := praytime.ParseHighLatMethod(val)
	if err != nil {
		return val
	}
	return fmt.Sprintf("%s (%s)", val, h)
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the table of supported calculation methods and their twilight parameters.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Supported calculation methods:")
			fmt.Fprintln(out)

			tbl := display.NewTable([]string{"ID", "Name", "Fajr", "Maghrib", "Isha", "Description"})
			for _, m := range praytime.Methods() {
				p := m.BaseParams()
				tbl.AddRow([]string{
					strconv.Itoa(int(m)),
					m.String(),
					strconv.FormatFloat(p.FajrAngle, 'f', -1, 64) + "°",
					p.MaghribSelector.Format(p.MaghribValue),
					p.IshaSelector.Format(p.IshaValue),
					m.Description(),
				})
			}
			fmt.Fprint(out, tbl.Render())
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Use --method <ID|name> to select a calculation method (default: 0, Jafari).")
			fmt.Fprintln(out, "Custom angles (--fajr-angle, --isha-minutes, ...) are layered over the selected method.")
			return nil
		},
	}
}
