package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantilley/xmlgrep"
	"github.com/briantilley/xmlgrep/formatter"
	"github.com/briantilley/xmlgrep/xmlio"
)

var matchCmd = &cobra.Command{
	Use:   "match [source] [target]",
	Short: "Check whether the target structure occurs anywhere in the source",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: xmlgrep match source_XML target_structure")
			os.Exit(1)
		}

		source, err := xmlio.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		target, err := xmlio.Load(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		res, err := xmlgrep.Grep(source, target, queryOptions(xmlgrep.ModeExists))
		if err != nil {
			logger.Fatal("Query failed", zap.Error(err))
		}
		logger.Debug("query finished", zap.Int("match_calls", res.Stats.MatchCalls))

		// "not found" is a normal outcome, not an error exit
		fmt.Print(formatter.FormatExists(args[0], res.Found))
	},
}
