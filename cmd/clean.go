package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lurk-sh/lurk/internal/config"
	"github.com/lurk-sh/lurk/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove settings and log files",
	Long: `Removes the persisted settings file and the debug log. The data
snapshot is left alone. Prompts for confirmation unless --yes is given.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	if !skipConfirm {
		fmt.Print("Remove settings and log files? [y/N] ")
		reader := bufio.NewReader(input)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	path, err := config.SettingsPath()
	if err == nil {
		if rmErr := os.Remove(path); rmErr == nil {
			fmt.Println("Settings removed.")
		} else if !os.IsNotExist(rmErr) {
			fmt.Fprintf(os.Stderr, "Warning: removing settings: %v\n", rmErr)
		}
	}

	cleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: clearing logs: %v\n", err)
	}
	if cleared > 0 {
		fmt.Printf("Removed %d log file(s).\n", cleared)
	}
	return nil
}
