package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftcad/draftcad/pkg/render"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dcad",
	Short: "draftcad - 2D drafting and drawing tools",
	Long: `draftcad (dcad) is a 2D drafting toolkit:
  - Interactive drawing with line and three-point arc construction
  - Pan, zoom and rotation view control with project save/load
  - SVG and DXF export

Examples:
  dcad view                           # Launch the drawing window
  dcad view drawing.json              # Open a saved drawing
  dcad export drawing.json -f svg     # Export a drawing to SVG
  dcad info drawing.json              # Show drawing statistics`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
