package commands

import (
	"os"

	"lenswiki/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mountsCmd)
}

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "Prints the camera mounts on the homepage and their lens counts.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := createClient(ctx, readConfig())

		mounts, err := client.Mounts(ctx)
		if err != nil {
			serviceutil.Fatal("failed to list mounts", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Mount", "Url", "Lenses"})

		for _, mount := range mounts {
			links, err := client.LensLinks(ctx, mount)
			if err != nil {
				serviceutil.Fatal("failed to list lens pages", err)
			}
			t.AppendRow(table.Row{mount.Name, mount.Href, len(links)})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
