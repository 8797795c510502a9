// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/stages/scan"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	SourceDir  string
	OutputPath string
	Pattern    string

	// Conversion
	FPS     float64
	Rotate  bool
	OutroMs int

	// Stamp overlay
	StampEnabled  bool
	StampFontSize float64
	StampFontPath string

	// Encoding
	VideoCRF    int
	Bitrate     int
	JPEGQuality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Pattern: "*",

		FPS:     30.0,
		Rotate:  true,
		OutroMs: 0,

		StampFontSize: 16,

		VideoCRF:    25,
		Bitrate:     0,
		JPEGQuality: 80,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	scanStage     pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	fs            ports.FileSystem
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:     scanStage,
		assembleStage: assembleStage,
		fs:            fs,
		sink:          sink,
		logger:        logger,
	}
}

// Run executes the complete pipeline.
//
// When no images match, Run reports it and returns a RunResult with
// NoInput set and a nil error. No output file is created in that case.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting conversion")

	// 1. Scan source images
	scanInput := o.buildScanInput(config)
	scanned, err := o.scanStage.Execute(ctx, scanInput)
	if err != nil {
		if errors.Is(err, scan.ErrNoImages) {
			o.logger.Warn("No images found in %s matching pattern %s", config.SourceDir, config.Pattern)
			return RunResult{NoInput: true}, nil
		}
		o.logger.Error("Failed to scan images: %s", err)
		return RunResult{}, fmt.Errorf("scan stage: %w", err)
	}
	o.logger.Info("Matched %d files", len(scanned.Paths))

	// 2. Decode and encode frames
	assembleInput := o.buildAssembleInput(config, scanned)
	assembled, err := o.assembleStage.Execute(ctx, assembleInput)
	if err != nil {
		o.logger.Error("Failed to encode video: %s", err)
		return RunResult{}, fmt.Errorf("assemble stage: %w", err)
	}
	o.logger.Info("Video encoded: %d bytes", len(assembled.VideoData))

	// 3. Write output file
	if err := o.fs.WriteFile(config.OutputPath, assembled.VideoData); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Info("Video saved to %s", config.OutputPath)

	// Build result for summary
	result := RunResult{
		SourceDir:    config.SourceDir,
		OutputPath:   config.OutputPath,
		Pattern:      config.Pattern,
		MatchedCount: len(scanned.Paths),
		FrameCount:   assembled.FrameCount,
		SkippedFiles: assembled.Skipped,
		Width:        assembled.Size.Width,
		Height:       assembled.Size.Height,
		FPS:          config.FPS,
		DurationMs:   assembled.DurationMs,
		FileSize:     int64(len(assembled.VideoData)),
	}

	// Save run debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(result, "", "  "); err == nil {
			o.sink.SaveRunJSON(data)
		}
	}

	return result, nil
}

func (o *Orchestrator) buildScanInput(config Config) pipeline.ScanInput {
	input := pipeline.DefaultScanInput()
	input.SourceDir = config.SourceDir
	if config.Pattern != "" {
		input.Pattern = config.Pattern
	}
	return input
}

func (o *Orchestrator) buildAssembleInput(config Config, scanned pipeline.ScanResult) pipeline.AssembleInput {
	return pipeline.AssembleInput{
		Paths:   scanned.Paths,
		FPS:     config.FPS,
		Rotate:  config.Rotate,
		OutroMs: config.OutroMs,
		Stamp: pipeline.StampOptions{
			Enabled:  config.StampEnabled,
			FontSize: config.StampFontSize,
			FontPath: config.StampFontPath,
		},
		Quality:     config.VideoCRF,
		Bitrate:     config.Bitrate,
		JPEGQuality: config.JPEGQuality,
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// NoInput is true when no images matched and the run ended early.
	NoInput bool

	// Input information
	SourceDir string
	Pattern   string

	// Conversion counters
	MatchedCount int
	FrameCount   int
	SkippedFiles []string

	// Video information
	OutputPath string
	Width      int
	Height     int
	FPS        float64
	DurationMs int
	FileSize   int64
}
