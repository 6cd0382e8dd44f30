package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	appui "github.com/draftcad/draftcad/internal/ui"
	"github.com/draftcad/draftcad/pkg/project"
	"github.com/draftcad/draftcad/pkg/render"
	"github.com/draftcad/draftcad/pkg/scene"
	"github.com/draftcad/draftcad/pkg/settings"
)

var viewWriteBack bool

var viewCmd = &cobra.Command{
	Use:   "view [drawing.json]",
	Short: "Launch the interactive drawing window",
	Long: `Open the drawing window. With a file argument the saved drawing is
loaded, including its view transform; without one an empty drawing starts at
the identity view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scn := scene.New()
		view := render.IdentityView
		path := ""
		if len(args) == 1 {
			path = args[0]
			doc, err := project.LoadFile(path)
			if err != nil {
				return err
			}
			for _, obj := range doc.Objects {
				scn.Add(obj)
			}
			view = doc.View
			fmt.Printf("Loaded %s: %d objects\n", path, scn.Len())
		}

		go func() {
			w := new(app.Window)
			title := "draftcad"
			if path != "" {
				title += " - " + path
			}
			w.Option(app.Title(title))
			w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

			a := appui.New(w, scn, settings.Defaults(), view)
			if err := a.Run(); err != nil {
				log.Fatal(err)
			}
			if viewWriteBack && path != "" {
				doc := project.Document{Objects: scn.Objects(), View: a.Camera().ViewState()}
				if err := project.SaveFile(path, doc); err != nil {
					log.Fatal(err)
				}
				fmt.Printf("Saved %s\n", path)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVarP(&viewWriteBack, "write", "w", false, "write the drawing back to the file on exit")
	rootCmd.AddCommand(viewCmd)
}
