// Package scan implements the image discovery stage.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fvbommel/sortorder"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// Stage discovers and orders the source images for a conversion.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
	sink   ports.DebugSink
}

// NewStage creates a new scan stage.
func NewStage(fs ports.FileSystem, logger ports.Logger, sink ports.DebugSink) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger,
		sink:   sink,
	}
}

// Execute globs the source directory and returns the matches in natural
// order. Returns ErrNoImages when nothing matches.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	result := pipeline.ScanResult{
		SourceDir: input.SourceDir,
		Pattern:   input.Pattern,
	}

	s.logger.Debug("Scanning %s with pattern %s", input.SourceDir, input.Pattern)

	pattern := filepath.Join(input.SourceDir, input.Pattern)
	matches, err := s.fs.Glob(pattern)
	if err != nil {
		return result, fmt.Errorf("glob %s: %w", pattern, err)
	}

	if len(matches) == 0 {
		return result, fmt.Errorf("%w: %s with pattern %s", ErrNoImages, input.SourceDir, input.Pattern)
	}

	SortNatural(matches)
	result.Paths = matches

	s.logger.Debug("Matched %d files", len(matches))

	// Save scan debug output
	if s.sink.Enabled() {
		if data, err := json.MarshalIndent(result, "", "  "); err == nil {
			s.sink.SaveScanJSON(data)
		}
	}

	return result, nil
}

// SortNatural sorts paths so numbered frames come in numeric order,
// frame2.png before frame10.png. Paths are compared by base name with
// the full path as tie breaker.
func SortNatural(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		bi := filepath.Base(paths[i])
		bj := filepath.Base(paths[j])
		if bi == bj {
			return sortorder.NaturalLess(paths[i], paths[j])
		}
		return sortorder.NaturalLess(bi, bj)
	})
}
