// Package ingest handles local file intake for the batch runner: scanning
// the intake directory for partner PDFs and archiving the ones that were
// successfully submitted.
package ingest

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/common"
)

// DirStats summarizes one intake scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
}

// Ingestor scans and archives intake files.
type Ingestor struct {
	logger *slog.Logger
}

func NewIngestor(logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{logger: logger}
}

// ScanDirectory lists the documents waiting in root, filtered by the
// allowed extensions. Non-recursive: the archive directory lives under the
// intake directory and must not be rescanned.
func (g *Ingestor) ScanDirectory(root string) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("intake directory is required")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, DirStats{}, common.WrapError(err, "read intake dir")
	}

	var paths []string
	var stats DirStats
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		stats.Scanned++
		ext := constants.NormalizeExt(filepath.Ext(entry.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		stats.Matched++
		paths = append(paths, filepath.Join(root, entry.Name()))
	}

	g.logger.Info("ingest.scan", "dir", root, "scanned", stats.Scanned, "matched", stats.Matched)
	return paths, stats, nil
}

// Archive moves processed files into archiveDir, replacing any previous
// copy of the same name. Called only after a successful submission, so a
// file that fails to move is logged and left behind rather than failing
// the batch.
func (g *Ingestor) Archive(archiveDir string, paths []string) int {
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		g.logger.Error("ingest.archive_dir_failed", "dir", archiveDir, "error", err)
		return 0
	}

	moved := 0
	for _, path := range dedupe(paths) {
		dst := filepath.Join(archiveDir, filepath.Base(path))
		if _, err := os.Stat(dst); err == nil {
			if err := os.Remove(dst); err != nil {
				g.logger.Warn("ingest.archive_replace_failed", "path", dst, "error", err)
				continue
			}
		}
		if err := os.Rename(path, dst); err != nil {
			g.logger.Warn("ingest.archive_move_failed", "path", path, "error", err)
			continue
		}
		moved++
	}
	g.logger.Info("ingest.archive", "dir", archiveDir, "moved", moved)
	return moved
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
