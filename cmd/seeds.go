// Package cmd — seeds command.
// Lists the configured domains and seed titles in a formatted table.
package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/corpuspipe/config"
	"github.com/gaurav-prasanna/corpuspipe/core/seeds"
)

func newSeedsCommand(v *viper.Viper) *cobra.Command {
	seedsCmd := &cobra.Command{
		Use:   "seeds",
		Short: "List the seed titles a build would fetch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlag(config.KeySeeds, cmd.Flags().Lookup(config.KeySeeds)); err != nil {
				return err
			}
			set, err := loadSeeds(v.GetString(config.KeySeeds))
			if err != nil {
				return err
			}
			renderSeeds(cmd.OutOrStdout(), set)
			return nil
		},
	}

	seedsCmd.Flags().String(config.KeySeeds, "", "YAML seeds file mapping domain to titles (default: built-in set)")
	return seedsCmd
}

// renderSeeds prints one row per seed title, in build order.
func renderSeeds(w io.Writer, set seeds.Set) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Domain", "#", "Title"})
	for _, d := range set.Domains() {
		for i, title := range d.Titles {
			t.AppendRow(table.Row{d.Name, i + 1, title})
		}
		t.AppendSeparator()
	}
	t.AppendFooter(table.Row{"", set.TitleCount(), "titles"})

	t.Render()
}
