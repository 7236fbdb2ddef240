// internal/cli/list_datasets.go
package wozeval

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dstlab/wozeval/internal/datasets"
	"github.com/dstlab/wozeval/internal/util"
)

// datasetsCmd implements 'list datasets', which prints every supported
// dataset tag with its corpus and gold reference file.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List supported dataset tags and their gold references",
	Run: func(cmd *cobra.Command, args []string) {
		root := datasets.DefaultReferenceDir
		if cfg := GetConfig(); cfg != nil {
			root = cfg.ReferenceRoot()
		}

		tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
		for _, d := range datasets.All() {
			fmt.Printf("%s %s %s\n",
				tagStyle.Render(util.PadRight(d.Tag, 10)),
				util.PadRight(d.Corpus.Name(), 12),
				d.ReferencePath(root),
			)
		}
	},
}

func init() {
	listCmd.AddCommand(datasetsCmd)
}
