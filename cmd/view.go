package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantilley/xmlgrep/xmlio"
)

var tagsOnly bool

var viewCmd = &cobra.Command{
	Use:   "view [source]",
	Short: "Pretty-print a source document, or sketch its tag structure",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "usage: xmlgrep view source_XML")
			os.Exit(1)
		}

		source, err := xmlio.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if tagsOnly {
			fmt.Print(source.TagView())
			return
		}

		out, err := xmlio.MarshalIndent(source, indentWidth())
		if err != nil {
			logger.Fatal("Failed to serialize document", zap.Error(err))
		}
		fmt.Print(out)
	},
}

func init() {
	viewCmd.Flags().BoolVar(&tagsOnly, "tags", false, "Print an indented tag-name sketch instead of markup")
}
