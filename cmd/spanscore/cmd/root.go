package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	spanscore "github.com/jamesainslie/go-spanscore"
)

// Version is reported by --version.
var Version = "dev"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "spanscore",
		Short: "Score BIO/BILOU sequence labelling output",
		Long: `spanscore compares a system label column against a gold label column in
CoNLL-like files (one token per line, blank lines between sentences) and
reports precision, recall and F1 over typed spans.

Configuration is read from flags, SPANSCORE_* environment variables and an
optional YAML config file, in that order of precedence.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("bio", false, "use BIO mode instead of BILOU")
	flags.Int("gold-column", -1, "index of the column holding gold labels (negative counts from the end)")
	flags.Int("sys-column", -2, "index of the column holding system labels (negative counts from the end)")
	flags.String("label-regex", spanscore.DefaultLabelPattern, "label pattern with named groups \"action\" and optional \"type\"")
	flags.Int("workers", 1, "number of blocks scored concurrently")
	flags.String("format", "text", "output format (text, table, json, yaml)")

	mustBindPFlag(v, "log.level", flags.Lookup("log-level"))
	mustBindPFlag(v, "bio", flags.Lookup("bio"))
	mustBindPFlag(v, "gold_column", flags.Lookup("gold-column"))
	mustBindPFlag(v, "sys_column", flags.Lookup("sys-column"))
	mustBindPFlag(v, "label_regex", flags.Lookup("label-regex"))
	mustBindPFlag(v, "workers", flags.Lookup("workers"))
	mustBindPFlag(v, "format", flags.Lookup("format"))

	rootCmd.AddCommand(
		newScoreCmd(v),
		newCompareCmd(v),
		newSimilaritiesCmd(),
	)
	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("SPANSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("%w: log level: %w", spanscore.ErrConfig, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// evaluatorOptions maps the shared configuration keys onto library options.
func evaluatorOptions(v *viper.Viper, logger *slog.Logger) []spanscore.Option {
	scheme := spanscore.BILOU
	if v.GetBool("bio") {
		scheme = spanscore.BIO
	}
	return []spanscore.Option{
		spanscore.WithScheme(scheme),
		spanscore.WithLabelPattern(v.GetString("label_regex")),
		spanscore.WithColumns(v.GetInt("gold_column"), v.GetInt("sys_column")),
		spanscore.WithWorkers(v.GetInt("workers")),
		spanscore.WithLogger(logger),
	}
}
