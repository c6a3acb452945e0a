// File: cmd/bundle.go
package cmd

import (
	"fmt"

	"contextra/pkg/bundle"
	"contextra/pkg/config"
	"contextra/pkg/logging"
	"contextra/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bundleFlags struct {
	configPath       string
	output           string
	tree             string
	tokenLimit       int
	maxFileSizeKB    int
	maxWorkers       int
	exclude          []string
	summariesFile    string
	includeSummaries bool
	copyOutput       bool
	verbose          bool
}

var bundleCmd = &cobra.Command{
	Use:   "bundle [paths...]",
	Short: "Bundle files into one output or token-bounded chunks",
	Long: `Bundle walks the given paths (default "."), filters out noise and
excluded files, and writes the surviving text into a single delimited
output file. With --token-limit set, the output is split into chunks that
keep each directory's files together whenever they fit the budget.`,
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		paths := cmdArgs
		if len(paths) == 0 {
			paths = []string{"."}
		}

		cfg, err := config.Load(bundleFlags.configPath, paths[0])
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)

		logger := rootLogger
		if bundleFlags.verbose {
			if err := logging.Setup(true, "contextra", version.Get().Version); err == nil {
				logger = logging.Logger
			}
		}
		if logger == nil {
			logger = zap.NewNop()
		}

		args := bundle.Arguments{
			Paths:            paths,
			Output:           cfg.Output,
			Tree:             cfg.Tree,
			TokenLimit:       cfg.TokenLimit,
			MaxFileSizeKB:    cfg.MaxFileSizeKB,
			MaxWorkers:       cfg.MaxWorkers,
			ExcludePatterns:  cfg.Exclude,
			ExtraIgnoreDirs:  cfg.IgnoreDirs,
			ExtraIgnoreExts:  cfg.IgnoreExtensions,
			IncludeSummaries: cfg.IncludeSummaries,
			CopyToClipboard:  bundleFlags.copyOutput,
			Verbose:          bundleFlags.verbose,
		}

		if cfg.SummariesFile != "" {
			summaries, err := config.LoadSummaries(cfg.SummariesFile)
			if err != nil {
				return fmt.Errorf("load summaries: %w", err)
			}
			args.Summaries = summaries
		}

		return bundle.Run(args, logger)
	},
}

// applyFlagOverrides copies explicitly-set flags over file-sourced values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Output = bundleFlags.output
	}
	if cmd.Flags().Changed("tree") {
		cfg.Tree = bundleFlags.tree
	}
	if cmd.Flags().Changed("token-limit") {
		cfg.TokenLimit = bundleFlags.tokenLimit
	}
	if cmd.Flags().Changed("max-file-size") {
		cfg.MaxFileSizeKB = bundleFlags.maxFileSizeKB
	}
	if cmd.Flags().Changed("workers") {
		cfg.MaxWorkers = bundleFlags.maxWorkers
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, bundleFlags.exclude...)
	}
	if cmd.Flags().Changed("summaries") {
		cfg.SummariesFile = bundleFlags.summariesFile
	}
	if cmd.Flags().Changed("include-summaries") {
		cfg.IncludeSummaries = bundleFlags.includeSummaries
	}
}

func init() {
	defaults := config.Default()

	bundleCmd.Flags().StringVarP(&bundleFlags.configPath, "config", "c", "",
		"Path to a configuration file (default: .contextra.yaml at the first input root)")
	bundleCmd.Flags().StringVarP(&bundleFlags.output, "output", "o", defaults.Output,
		"Output file path; chunked runs write <output>.part-NNN files")
	bundleCmd.Flags().StringVarP(&bundleFlags.tree, "tree", "t", "",
		"Optional path for the rendered file tree")
	bundleCmd.Flags().IntVarP(&bundleFlags.tokenLimit, "token-limit", "l", defaults.TokenLimit,
		"Estimated-token budget per chunk; 0 disables chunking")
	bundleCmd.Flags().IntVar(&bundleFlags.maxFileSizeKB, "max-file-size", defaults.MaxFileSizeKB,
		"Maximum file size in KB; larger files are replaced by a placeholder")
	bundleCmd.Flags().IntVarP(&bundleFlags.maxWorkers, "workers", "w", defaults.MaxWorkers,
		"Concurrent file readers; 0 means one per CPU")
	bundleCmd.Flags().StringSliceVarP(&bundleFlags.exclude, "exclude", "x", nil,
		"Exclusion pattern, glob shorthand or /regex/ (repeatable)")
	bundleCmd.Flags().StringVar(&bundleFlags.summariesFile, "summaries", "",
		"YAML file mapping file paths to summary annotations")
	bundleCmd.Flags().BoolVar(&bundleFlags.includeSummaries, "include-summaries", false,
		"Prepend a comment-wrapped summary line to annotated files")
	bundleCmd.Flags().BoolVar(&bundleFlags.copyOutput, "copy", false,
		"Copy the assembled output to the system clipboard")
	bundleCmd.Flags().BoolVarP(&bundleFlags.verbose, "verbose", "v", false,
		"Enable detailed per-file logging")

	RootCmd.AddCommand(bundleCmd)
}
