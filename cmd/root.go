// Package cmd holds the CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/lurk-sh/lurk/internal/app"
	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/logger"
	"github.com/lurk-sh/lurk/internal/store"
)

var (
	dataArg               string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "lurk",
	Short: "Terminal read surface for a federated social/chat dataset",
	Long: `Lurk is a read-only TUI over a snapshot of a federated social dataset:
chats with their messages and members, feeds with their posts, and folders
with their files. Run 'lurk demo' first to generate sample data.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVar(&dataArg, "data", "", "Snapshot path or http(s) URL (default ~/.lurk/data.json)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("lurk %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("lurk %s\n", version)
}

// DefaultDataPath returns the default snapshot location under ~/.lurk.
func DefaultDataPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lurk", "data.json"), nil
}

func resolveDataArg() (string, error) {
	if dataArg != "" {
		return dataArg, nil
	}
	return DefaultDataPath()
}

func runTUI(cmd *cobra.Command, args []string) error {
	arg, err := resolveDataArg()
	if err != nil {
		return fmt.Errorf("resolving data path: %w", err)
	}

	defer logger.Close()

	settings := config.Load()
	m := app.NewModel(settings, store.SourceFor(arg))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
