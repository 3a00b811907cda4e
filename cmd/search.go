package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantilley/xmlgrep"
	"github.com/briantilley/xmlgrep/formatter"
	"github.com/briantilley/xmlgrep/xmlio"
)

var (
	targetArg string
	firstOnly bool
)

var searchCmd = &cobra.Command{
	Use:   "search [source] [target]",
	Short: "Find every occurrence of the target structure in the source",
	Run: func(cmd *cobra.Command, args []string) {
		if targetArg != "" {
			runMultiFileSearch(args)
			return
		}
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: xmlgrep search source_XML target_structure")
			os.Exit(1)
		}
		runSearch(args[0], args[1])
	},
}

func init() {
	searchCmd.Flags().StringVarP(&targetArg, "target", "t", "", "Target structure; positional args become files or directories to scan")
	searchCmd.Flags().BoolVar(&firstOnly, "first", false, "Stop at the first match in visitation order")
}

func runSearch(sourceArg, targetRaw string) {
	source, err := xmlio.Load(sourceArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	target, err := xmlio.Load(targetRaw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	mode := xmlgrep.ModeAll
	if firstOnly {
		mode = xmlgrep.ModeFirst
	}

	res, err := xmlgrep.Grep(source, target, queryOptions(mode))
	if err != nil {
		logger.Fatal("Query failed", zap.Error(err))
	}
	logger.Debug("query finished",
		zap.Int("matches", len(res.Matches)),
		zap.Int("match_calls", res.Stats.MatchCalls))

	out, err := formatter.FormatMatches(sourceArg, res.Matches, pretty, indentWidth())
	if err != nil {
		logger.Fatal("Failed to format matches", zap.Error(err))
	}
	fmt.Print(out)
}

// runMultiFileSearch greps every XML file reachable from the given paths
// against the --target structure. Per-file parse failures are reported and
// skipped; they flip the exit status but do not stop the scan.
func runMultiFileSearch(paths []string) {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: xmlgrep search --target TARGET path...")
		os.Exit(1)
	}

	target, err := xmlio.Load(targetArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	files, err := collectXMLFiles(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	mode := xmlgrep.ModeAll
	if firstOnly {
		mode = xmlgrep.ModeFirst
	}
	opts := queryOptions(mode)

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	failed := false
	for _, file := range files {
		source, err := xmlio.ParseFile(file)
		if err != nil {
			logger.Error("Skipping unparseable file", zap.String("file", file), zap.Error(err))
			failed = true
			continue
		}

		res, err := xmlgrep.Grep(source, target, opts)
		if err != nil {
			logger.Fatal("Query failed", zap.String("file", file), zap.Error(err))
		}

		if bar != nil {
			_ = bar.Add(1)
			fmt.Println()
		}
		if len(res.Matches) > 0 {
			out, err := formatter.FormatMatches(file, res.Matches, pretty, indentWidth())
			if err != nil {
				logger.Fatal("Failed to format matches", zap.Error(err))
			}
			fmt.Print(out)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// collectXMLFiles expands the path arguments: directories are walked for
// .xml files, plain files are taken as given.
func collectXMLFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && filepath.Ext(filePath) == ".xml" {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}
	}
	return files, nil
}
