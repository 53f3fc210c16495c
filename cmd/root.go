package cmd

import (
	"fmt"
	"os"

	"roomrenamer/pkg/config"
	"roomrenamer/pkg/session"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "roomrenamer",
	Short: "Turn a class schedule export into a calendar",
	Long: `roomrenamer converts the semicolon-separated schedule export of your
university into an .ics calendar for a single course, with readable
room and course names you choose once and reuse.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}

	cfg, err := config.Load()
	if err != nil || cfg.LogLevel == "" {
		return
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("ignoring unknown log level", "level", cfg.LogLevel)
		return
	}
	log.SetLevel(level)
}

// openSession builds a session from the saved config and loads schedulePath.
func openSession(schedulePath string) (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s, err := session.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := s.LoadSchedule(schedulePath); err != nil {
		return nil, fmt.Errorf("could not load schedule: %w", err)
	}

	cfg.LastSchedule = schedulePath
	if err := config.Save(cfg); err != nil {
		log.Warn("could not remember schedule path", "err", err)
	}

	return s, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
}
