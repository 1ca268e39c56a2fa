package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adeotun/paystackease/config"
	"github.com/adeotun/paystackease/paystack"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *paystack.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paystackease",
	Short: "A CLI companion to the paystackease client library",
	Long: `paystackease lets you inspect your Paystack integration from the
command line: check balances, list and filter customers, and resolve
bank accounts and card BINs.

The secret key is read from the config file or PAYSTACK_SECRET_KEY.`,
}

// SetVersion records build information injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	var opts []paystack.Option
	if cfg.Paystack.BaseURL != "" {
		opts = append(opts, paystack.WithBaseURL(cfg.Paystack.BaseURL))
	}
	if cfg.Paystack.TimeoutSeconds > 0 {
		opts = append(opts, paystack.WithTimeout(time.Duration(cfg.Paystack.TimeoutSeconds)*time.Second))
	}

	client, err = paystack.NewClient(cfg.Paystack.SecretKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Paystack client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on a real terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
