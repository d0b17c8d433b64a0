package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	themeName string
	themeFile string
	noColor   bool

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Parse, resolve and preview theme colour values",
	Long: `swatch works with the colour values of a themeable client: flat colours,
linear gradients and references to theme variables such as --accent.

It converts values to and from their text form, resolves variables against a
theme, projects values into paint and previews the result in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion injects build information.
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// GetVersion returns the application version string.
func GetVersion() string {
	return appVersion
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .swatch.yaml or ~/.config/swatch/.swatch.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
	rootCmd.PersistentFlags().StringVarP(&themeName, "theme", "t", "dark",
		"built-in theme to resolve variables against")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme-file", "",
		"YAML theme file (overrides --theme)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")

	// Bind flags to viper (errors are nil when flag exists)
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("theme.preset", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("theme.file", rootCmd.PersistentFlags().Lookup("theme-file"))
}
