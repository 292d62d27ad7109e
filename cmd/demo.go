package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lurk-sh/lurk/internal/demo"
)

var demoOut string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a sample data snapshot",
	Long: `Writes a small populated snapshot to the default data path so the app
has something to show. Use --out to write it somewhere else.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoOut, "out", "", "Output path (default ~/.lurk/data.json)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	path := demoOut
	if path == "" {
		var err error
		path, err = DefaultDataPath()
		if err != nil {
			return fmt.Errorf("resolving data path: %w", err)
		}
	}

	if err := demo.Write(path); err != nil {
		return err
	}
	fmt.Printf("Sample snapshot written to %s\n", path)
	return nil
}
