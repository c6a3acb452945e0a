// File: pkg/bundle/reader.go
package bundle

import (
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// readCandidates turns candidates into ProcessedFiles using a worker pool.
// Content that violates the read contract is substituted, never rejected:
// files over the byte ceiling get SizeExceededPlaceholder, files containing
// a null byte get BinaryPlaceholder. Read failures are logged and the file
// is dropped from the result.
func readCandidates(candidates []candidate, maxFileSizeKB, maxWorkers int, progress bool, logger *zap.Logger) []*ProcessedFile {
	if len(candidates) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}

	jobs := make(chan candidate, len(candidates))
	results := make(chan *ProcessedFile, len(candidates))
	var wg sync.WaitGroup

	maxBytes := int64(maxFileSizeKB) * 1024

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			for c := range jobs {
				results <- readOne(c, maxBytes, workerLogger)
			}
		}()
	}

	for _, c := range candidates {
		jobs <- c
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.NewOptions(len(candidates),
			progressbar.OptionSetDescription("  Reading files"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}

	var files []*ProcessedFile
	for f := range results {
		if bar != nil {
			_ = bar.Add(1)
		}
		if f != nil {
			files = append(files, f)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Debug("All files read", zap.Int("fileCount", len(files)))
	return files
}

// readOne reads a single candidate into a ProcessedFile. Returns nil when
// the file cannot be read.
func readOne(c candidate, maxBytes int64, logger *zap.Logger) *ProcessedFile {
	f := &ProcessedFile{
		Path:     c.relPath,
		Name:     path.Base(c.relPath),
		Size:     c.size,
		Selected: true,
	}

	if maxBytes > 0 && c.size > maxBytes {
		logger.Debug("File exceeds size ceiling, substituting placeholder",
			zap.String("file", c.relPath),
			zap.Int64("sizeBytes", c.size))
		f.Content = SizeExceededPlaceholder
		return f
	}

	data, err := os.ReadFile(c.absPath)
	if err != nil {
		logger.Error("Failed to read file", zap.String("file", c.absPath), zap.Error(err))
		return nil
	}

	if isBinaryContent(data) {
		logger.Debug("Binary file detected, substituting placeholder", zap.String("file", c.relPath))
		f.IsBinary = true
		f.Content = BinaryPlaceholder
		return f
	}

	f.Content = string(data)
	return f
}
