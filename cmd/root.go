package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantilley/xmlgrep"
	"github.com/briantilley/xmlgrep/search"
)

var (
	cfgFile string
	useBFS  bool
	strict  bool
	pretty  bool
	indent  int
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "xmlgrep [source] [target]",
	Short:            "xmlgrep - grep a source XML tree for occurrences of a target structure",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'xmlgrep' is entered
			_ = cmd.Help()
			return
		}
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: xmlgrep source_XML target_structure")
			os.Exit(1)
		}
		// Format: xmlgrep SOURCE TARGET => behaves like the search subcommand
		searchCmd.Run(searchCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".xmlgrep.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&useBFS, "bfs", false, "Visit source nodes in breadth-first (level) order")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Trim each match down to the nodes that carried it")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print matched subtrees with nested indentation")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", 0, "Spaces per indentation level when pretty-printing (default from config, 2)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(viewCmd)
}

func initLogger() {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
}

// queryOptions merges the config file with any explicitly set flags. Flags
// win; the config only supplies defaults.
func queryOptions(mode xmlgrep.Mode) xmlgrep.Options {
	opts, err := loadedConfig().Options()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	opts.Mode = mode

	if useBFS {
		opts.Strategy = search.BreadthFirst
	}
	if strict {
		opts.Strict = true
	}
	return opts
}

func loadedConfig() xmlgrep.Config {
	cfg, err := xmlgrep.LoadConfig(cfgFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	return cfg
}

// indentWidth resolves the pretty-printing indent: the flag when given,
// otherwise the config value.
func indentWidth() int {
	if indent > 0 {
		return indent
	}
	return loadedConfig().Indent
}
