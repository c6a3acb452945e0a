// File: pkg/bundle/collect.go
package bundle

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// CollectOptions controls file discovery and reading.
type CollectOptions struct {
	Paths         []string    // Files or directories to walk.
	MaxFileSizeKB int         // Byte ceiling; larger files get the size placeholder.
	MaxWorkers    int         // Concurrent readers; <= 0 means NumCPU.
	Excludes      []Matcher   // Compiled user exclusion patterns.
	Ignore        *IgnoreFilter
	Logger        *zap.Logger
	Progress      bool        // Show a progress bar on stderr while reading.
}

// candidate pairs a file's absolute location with its pipeline path.
type candidate struct {
	absPath string
	relPath string
	size    int64
}

// Collect walks the input paths, applies the ignore filter, per-root
// .gitignore rules, and user exclusion patterns, then reads the surviving
// files concurrently. The result is sorted by path with every file
// selected; individual read failures are logged and the file dropped.
func Collect(opts CollectOptions) ([]*ProcessedFile, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ignoreFilter := opts.Ignore
	if ignoreFilter == nil {
		ignoreFilter = defaultIgnoreFilter
	}

	var candidates []candidate
	for _, root := range opts.Paths {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			logger.Warn("Failed to resolve path", zap.String("path", root), zap.Error(err))
			continue
		}

		info, err := os.Stat(absRoot)
		if err != nil {
			logger.Warn("Path does not exist or cannot be accessed", zap.String("path", absRoot), zap.Error(err))
			continue
		}

		if !info.IsDir() {
			candidates = append(candidates, candidate{
				absPath: absRoot,
				relPath: filepath.ToSlash(filepath.Base(absRoot)),
				size:    info.Size(),
			})
			continue
		}

		found, err := walkRoot(absRoot, ignoreFilter, opts.Excludes, logger)
		if err != nil {
			logger.Warn("Failed to traverse directory", zap.String("dir", absRoot), zap.Error(err))
			continue
		}
		candidates = append(candidates, found...)
	}

	files := readCandidates(candidates, opts.MaxFileSizeKB, opts.MaxWorkers, opts.Progress, logger)

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	logger.Debug("File collection complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("collected", len(files)))
	return files, nil
}

// walkRoot traverses one directory root, honoring the ignore filter, a
// .gitignore at the root if present, and the exclusion matchers.
func walkRoot(absRoot string, ignoreFilter *IgnoreFilter, excludes []Matcher, logger *zap.Logger) ([]candidate, error) {
	gi := loadGitignore(absRoot, logger)

	var found []candidate
	err := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil || relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if ignoreFilter.IsIgnoredDir(d.Name()) {
				logger.Debug("Skipping ignored directory", zap.String("dir", relPath))
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(relPath) {
				logger.Debug("Skipping gitignored directory", zap.String("dir", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		if ignoreFilter.IsIgnored(relPath) {
			return nil
		}
		if gi != nil && gi.MatchesPath(relPath) {
			return nil
		}
		if MatchesAny(relPath, excludes) {
			logger.Debug("File excluded by pattern", zap.String("file", relPath))
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to get file info", zap.String("file", path), zap.Error(infoErr))
			return nil
		}

		found = append(found, candidate{absPath: path, relPath: relPath, size: info.Size()})
		return nil
	})
	return found, err
}

// loadGitignore compiles the root's .gitignore when present.
func loadGitignore(absRoot string, logger *zap.Logger) *gitignore.GitIgnore {
	path := filepath.Join(absRoot, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		logger.Warn("Failed to compile .gitignore", zap.String("file", path), zap.Error(err))
		return nil
	}
	logger.Debug("Loaded .gitignore", zap.String("file", path))
	return gi
}
