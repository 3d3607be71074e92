package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/config"
	"github.com/muurk/textterm/internal/design"
	"github.com/muurk/textterm/internal/logging"
	"github.com/muurk/textterm/internal/terminal"
	"github.com/muurk/textterm/internal/ui"
)

// Global flags
var (
	configPath  string
	logLevel    string
	logFile     string
	windowTitle string
	noAltScreen bool
	fontBold    bool
	fontItalic  bool
)

// settings is loaded once per invocation by setup.
var settings *config.Settings

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: OS config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: textterm.log in the config directory)")
	rootCmd.PersistentFlags().StringVar(&windowTitle, "title", "", "Window title (default: from configuration)")
	rootCmd.PersistentFlags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")

	designFontCmd.Flags().BoolVar(&fontBold, "bold", false, "Bold text")
	designFontCmd.Flags().BoolVar(&fontItalic, "italic", false, "Italic text")

	designCmd.AddCommand(designShowCmd)
	designCmd.AddCommand(designResetCmd)
	designCmd.AddCommand(designSetCmd)
	designCmd.AddCommand(designFontCmd)

	demoCmd.AddCommand(demoHexCmd)
	demoCmd.AddCommand(demoNumbersCmd)

	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(demoCmd)
}

// setup loads settings and initializes logging. Flags take precedence over
// environment variables, which take precedence over the settings file.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(configPath)
	if err != nil {
		return err
	}
	settings = s

	level := firstNonEmpty(logLevel, os.Getenv(logging.LogLevelEnvVar), s.Preferences.LogLevel)
	path := firstNonEmpty(logFile, os.Getenv(logging.LogFileEnvVar), s.Preferences.LogFile)
	if level != "" && path == "" {
		if path, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	if err := logging.Initialize(level, path); err != nil {
		return err
	}

	logging.Debug("Settings loaded", zap.String("config", configPath), zap.String("font", s.CurrentDesign().Font.String()))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// runDemo opens a terminal window with the saved design and runs app in it.
func runDemo(cmd *cobra.Command, app ui.App) error {
	term := terminal.New(settings.CurrentDesign())

	opts := ui.Options{
		Title:     firstNonEmpty(windowTitle, settings.Preferences.Title),
		AltScreen: settings.Preferences.AltScreen && !noAltScreen,
		OnDesign: func(d design.Design) error {
			settings.SetDesign(d)
			return settings.Save(configPath)
		},
	}
	return ui.Run(cmd.Context(), term, app, opts)
}

// demoCmd groups the sample sessions
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a sample session",
}

var demoHexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Read lines and hex numbers until \"exit\" (the default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, hexDemo)
	},
}

var demoNumbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Tour every typed read and number format",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, numbersDemo)
	},
}

// designCmd manages the saved palette and font
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Show or change the saved terminal design",
	Long: `Show or change the palette and font stored in the configuration file.

Changes take effect the next time a terminal opens. The same settings can
be edited interactively from the Format menu.`,
}

var designShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved design",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintDesign(settings.CurrentDesign(), "Configuration: "+path)
		return nil
	},
}

var designResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default design",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings.ResetDesign()
		if err := settings.Save(configPath); err != nil {
			return fmt.Errorf("failed to save design: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Design reset to defaults")
		return nil
	},
}

var designSetCmd = &cobra.Command{
	Use:   "set <role> <color>",
	Short: "Set one color of the palette",
	Long: `Set one color of the palette.

Roles: back, text, success, error, warning, highlight.
Colors are hex values such as #ff8000 or #f80.`,
	Example: `  # Pure white text
  textterm design set text "#ffffff"

  # Softer error color
  textterm design set error "#e06c75"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := design.ParseRole(args[0])
		if !ok {
			return fmt.Errorf("unknown role %q (valid: back, text, success, error, warning, highlight)", args[0])
		}
		c, err := design.ParseColor(args[1])
		if err != nil {
			return err
		}

		settings.SetDesign(settings.CurrentDesign().WithColor(role, c))
		if err := settings.Save(configPath); err != nil {
			return fmt.Errorf("failed to save design: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess(fmt.Sprintf("%s color set to %s", role.Label(), c))
		return nil
	},
}

var designFontCmd = &cobra.Command{
	Use:   "font <family> <size>",
	Short: "Set the font",
	Example: `  textterm design font "JetBrains Mono" 12 --bold`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[1])
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid font size %q", args[1])
		}
		f := design.Font{Family: args[0], Size: size, Bold: fontBold, Italic: fontItalic}

		settings.SetDesign(settings.CurrentDesign().WithFont(f))
		if err := settings.Save(configPath); err != nil {
			return fmt.Errorf("failed to save design: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Font set to " + f.String())
		return nil
	},
}
