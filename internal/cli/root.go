package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-dominance/internal/pipeline"
)

var (
	// Global flags
	cfgFile      string
	logLevel     string
	outputFormat string
	quiet        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dominance",
	Short: "Dominant categories per group, with color ramps, charts and exports",
	Long: `dominance counts how often each category occurs within each group of a table
and reports the most frequent (dominant) category of every group.

Tables come from a CSV file or URL, a bundled sample, or a SQLite query.

Examples:
  dominance aggregate --sample blood_types
  dominance aggregate data.csv --group country --category blood_type --top 10
  dominance breakdown --focus Japan https://example.com/blood.csv
  dominance chart --kind bar --out top.png data.csv
  dominance rank --sample subway --label 역명 --sum 승차총승객수,하차총승객수 --equals 노선명=2호선`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dominance.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml, csv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Duration("fetch-timeout", 15*time.Second, "timeout per remote fetch attempt")
	rootCmd.PersistentFlags().Int("fetch-retries", pipeline.DefaultRetryConfig.MaxAttempts, "attempts per remote fetch")

	// Bind flags to viper
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("fetch-timeout", rootCmd.PersistentFlags().Lookup("fetch-timeout"))
	_ = viper.BindPFlag("fetch-retries", rootCmd.PersistentFlags().Lookup("fetch-retries"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("dominance")
	}

	viper.SetEnvPrefix("DOMINANCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// initLogging configures the global logger
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch viper.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	// Logs go to stderr so piped output stays clean
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// newRunner builds a runner from the fetch settings
func newRunner() *pipeline.Runner {
	loader := pipeline.NewLoader()
	if d := viper.GetDuration("fetch-timeout"); d > 0 {
		loader.Timeout = d
	}
	if n := viper.GetInt("fetch-retries"); n > 0 {
		loader.Retry.MaxAttempts = n
	}
	return &pipeline.Runner{Loader: loader}
}
