// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Run executes one bundling pass: collect, annotate, order, then either
// assemble a single output or pack token-bounded chunks.
func Run(args Arguments, logger *zap.Logger) error {
	start := time.Now()
	logger.Info("Starting bundle run",
		zap.Strings("paths", args.Paths),
		zap.Int("tokenLimit", args.TokenLimit))

	if err := ensureDirectory(filepath.Dir(args.Output), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if args.Tree != "" {
		if err := ensureDirectory(filepath.Dir(args.Tree), logger); err != nil {
			return fmt.Errorf("failed to create tree output directory: %w", err)
		}
	}

	excludes := CompilePatterns(args.ExcludePatterns)
	logger.Debug("Compiled exclusion patterns", zap.Int("count", len(excludes)))

	files, err := Collect(CollectOptions{
		Paths:         args.Paths,
		MaxFileSizeKB: args.MaxFileSizeKB,
		MaxWorkers:    args.MaxWorkers,
		Excludes:      excludes,
		Ignore:        NewIgnoreFilter(args.ExtraIgnoreDirs, args.ExtraIgnoreExts),
		Logger:        logger,
		Progress:      !args.Verbose && term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to bundle after filtering")
		return nil
	}

	if n := AttachSummaries(files, args.Summaries); n > 0 {
		logger.Debug("Attached summaries", zap.Int("count", n))
	}

	ordered := OrderFiles(files)
	opts := Options{IncludeSummaries: args.IncludeSummaries}

	if args.Tree != "" {
		tree := RenderTree(BuildTree(ordered))
		if err := writeToFile(args.Tree, []byte(tree), 0644, logger); err != nil {
			return fmt.Errorf("failed to write tree output: %w", err)
		}
	}

	assembled := Assemble(ordered, opts)

	if args.TokenLimit > 0 {
		chunks := Pack(ordered, args.TokenLimit, opts)
		if err := writeChunks(args.Output, chunks, logger); err != nil {
			return fmt.Errorf("failed to write chunks: %w", err)
		}
		logger.Info("Bundled files into chunks",
			zap.Int("totalFiles", len(ordered)),
			zap.Int("chunks", len(chunks)),
			zap.Int("estimatedTokens", EstimateTokens(assembled)),
			zap.Duration("elapsed", time.Since(start)))
	} else {
		if err := writeToFile(args.Output, []byte(assembled), 0644, logger); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Bundled files",
			zap.String("outputFile", args.Output),
			zap.Int("totalFiles", len(ordered)),
			zap.Int("estimatedTokens", EstimateTokens(assembled)),
			zap.Duration("elapsed", time.Since(start)))
	}

	if args.CopyToClipboard {
		if err := clipboard.WriteAll(assembled); err != nil {
			logger.Warn("Failed to copy output to clipboard", zap.Error(err))
		} else {
			logger.Info("Copied assembled output to clipboard")
		}
	}

	return nil
}

// chunkPath derives the per-chunk filename from the configured output path:
// bundle.txt becomes bundle.part-001.txt, bundle.part-002.txt, ...
func chunkPath(output string, index int) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s.part-%03d%s", base, index+1, ext)
}

// writeChunks writes each chunk to its own numbered file.
func writeChunks(output string, chunks []string, logger *zap.Logger) error {
	for i, chunk := range chunks {
		path := chunkPath(output, i)
		if err := writeToFile(path, []byte(chunk), 0644, logger); err != nil {
			return err
		}
		logger.Debug("Wrote chunk",
			zap.String("file", path),
			zap.Int("estimatedTokens", EstimateTokens(chunk)))
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
