package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/config"
	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/logger"
	"github.com/yildizm/testimonialhero/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	themeName string

	globalConfig *config.Config
	appLogger    *zap.Logger
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "testimonialhero",
		Short: "Collect client testimonials in 60 seconds",
		Long: `TestimonialHero is a terminal demo of a testimonial collection product.

Run without a subcommand to open the interactive app: a landing page, a demo
of the client-facing form, the testimonial form itself and a dashboard for
the email you sign up with.

Testimonials shown on the dashboard come from built-in sample data or from a
YAML fixture file that can be reloaded while the app runs.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobals,
		RunE:              runInteractive,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (forces debug logging)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme ("+strings.Join(ui.GetAvailableThemes(), ", ")+")")

	// Add subcommands
	rootCmd.AddCommand(newTestimonialsCommand())
	rootCmd.AddCommand(newLinkCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// setupGlobals loads configuration and applies it to the shared terminal
// state before any command runs.
func setupGlobals(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		for _, w := range loader.Warnings() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
	}
	globalConfig = cfg

	if err := applyPresentation(cmd, cfg.UI); err != nil {
		return err
	}

	log, err := logger.New(logger.FromConfig(cfg.Logging, verbose))
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	appLogger = log
	appLogger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("source", cfg.Testimonials.Source))

	return nil
}

// applyPresentation sets emoji, theme and color state. Flags win over the
// config file.
func applyPresentation(cmd *cobra.Command, cfg config.UIConfig) error {
	disableEmoji := noEmoji || cfg.NoEmoji
	// Auto-disable emojis on Windows if not explicitly set
	if runtime.GOOS == "windows" && !cmd.Flags().Changed("no-emoji") {
		disableEmoji = true
	}
	emoji.SetEmojiDisabled(disableEmoji)

	theme := cfg.Theme
	if themeName != "" {
		theme = themeName
	}
	if !ui.SetThemeByName(theme) {
		return fmt.Errorf("unknown theme: %s (available: %s)", theme, strings.Join(ui.GetAvailableThemes(), ", "))
	}

	ui.ApplyColorMode(cfg.ColorMode, noColor)
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TestimonialHero %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the loaded configuration, or the defaults when no
// command has run yet
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func getLogger() *zap.Logger {
	if appLogger == nil {
		return zap.NewNop()
	}
	return appLogger
}
