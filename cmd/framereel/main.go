// Package main provides the CLI entry point for framereel.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/framereel/pkg/adapters/consoleprogress"
	"github.com/user/framereel/pkg/adapters/filesink"
	"github.com/user/framereel/pkg/adapters/ggrenderer"
	"github.com/user/framereel/pkg/adapters/h264encoder"
	"github.com/user/framereel/pkg/adapters/imagedecoder"
	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/adapters/nullsink"
	"github.com/user/framereel/pkg/adapters/osfilesystem"
	"github.com/user/framereel/pkg/adapters/smartencoder"
	"github.com/user/framereel/pkg/config"
	"github.com/user/framereel/pkg/framereel"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/stages/assemble"
	"github.com/user/framereel/pkg/stages/scan"
	"github.com/user/framereel/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert an image sequence to a video."`
	Formats FormatsCmd `cmd:"" help:"Show encoder availability."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ConvertCmd defines the convert subcommand.
type ConvertCmd struct {
	// Required arguments
	Input  string `short:"i" required:"" help:"Source directory containing the image sequence."`
	Output string `short:"o" required:"" help:"Output video file path (.mp4 or .avi)."`

	// Selection
	Pattern *string `short:"p" help:"Glob pattern for matching images (default: *.png)."`

	// Conversion options
	FPS      *float64 `help:"Playback frame rate (default: 30)."`
	NoRotate bool     `help:"Disable the default 90 degree counterclockwise rotation."`
	Outro    *int     `help:"Duration to hold the final frame in milliseconds."`
	Stamp    bool     `help:"Draw the frame index and file name on each frame."`

	// Encoding options
	Codec       *string `help:"Video codec: auto, h264 or mjpeg (default: auto)."`
	Preset      string  `enum:",low,medium,high" default:"" help:"Quality preset setting CRF and JPEG quality together (low, medium, high)."`
	Quality     *int    `short:"q" help:"Video quality (CRF 0-51 for H.264, lower is better)."`
	Bitrate     *int    `help:"Target bitrate in kbps (0 = quality mode)."`
	JPEGQuality *int    `help:"JPEG quality for MJPEG frames (1-100)."`
	FFmpegPath  string  `help:"Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)."`

	// Summary output
	Summary string `help:"Write a Markdown conversion summary to this file."`

	// Config file
	Config string `short:"c" help:"YAML configuration file (flags override file values)."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// FormatsCmd reports which encoders are usable on this system.
type FormatsCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framereel"),
		kong.Description("Convert image sequences into videos."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the convert command.
func (cmd *ConvertCmd) Run() error {
	// Build config from defaults, config file and flag overrides
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	decoder := imagedecoder.New()

	// Select the encoder for the destination
	codec, err := smartencoder.ParseCodec(cfg.Codec)
	if err != nil {
		return err
	}
	encoder, info, err := smartencoder.New(cfg.OutputPath, codec, smartencoder.Options{
		FFmpegPath: cfg.FFmpegPath,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	log.Info("Using %s encoder (%s)", info.Codec, info.Backend)

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create progress reporter
	var progress ports.ProgressReporter
	if cmd.Quiet {
		progress = consoleprogress.NewWithWriter(io.Discard)
	} else {
		progress = consoleprogress.New()
	}

	// Create stages
	scanStage := scan.NewStage(fs, log, sink)
	assembleStage := assemble.NewStage(decoder, renderer, encoder, progress, sink, log)

	// Create orchestrator
	orch := orchestrator.New(scanStage, assembleStage, fs, sink, log)

	// Run pipeline
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}
	if result.NoInput {
		// Already reported; no output file, and not a failure.
		return nil
	}

	// Write summary
	if cmd.Summary != "" {
		if err := cmd.writeSummary(fs, cfg, info, result); err != nil {
			log.Error("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	return nil
}

// buildConfig creates a Config from defaults, an optional config file
// and CLI overrides.
func (cmd *ConvertCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()

	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.SourceDir = cmd.Input
	cfg.OutputPath = cmd.Output

	if cmd.Pattern != nil {
		cfg.Pattern = *cmd.Pattern
	} else if cfg.Pattern == "" || cfg.Pattern == "*" {
		// The library default matches every file, the CLI narrows it to PNG
		cfg.Pattern = "*.png"
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.NoRotate {
		cfg.Rotate = false
	}
	if cmd.Outro != nil {
		cfg.OutroMs = *cmd.Outro
	}
	if cmd.Stamp {
		cfg.Stamp.Enabled = true
	}
	if cmd.Codec != nil {
		cfg.Codec = *cmd.Codec
	}
	// A preset sets both quality knobs, explicit flags still win
	if cmd.Preset != "" {
		settings := framereel.GetQualitySettings(framereel.QualityPreset(cmd.Preset))
		cfg.Quality = settings.VideoCRF
		cfg.JPEGQuality = settings.JPEGQuality
	}
	if cmd.Quality != nil {
		cfg.Quality = *cmd.Quality
	}
	if cmd.Bitrate != nil {
		cfg.Bitrate = *cmd.Bitrate
	}
	if cmd.JPEGQuality != nil {
		cfg.JPEGQuality = *cmd.JPEGQuality
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}

	return cfg, nil
}

// writeSummary renders the run result as a Markdown summary file.
func (cmd *ConvertCmd) writeSummary(fs ports.FileSystem, cfg config.Config, info smartencoder.Info, result orchestrator.RunResult) error {
	quality := cfg.Quality
	if info.Codec == smartencoder.CodecMJPEG {
		quality = cfg.JPEGQuality
	}

	summary := summarizer.NewBuilder().
		WithSource(result.SourceDir, result.Pattern, result.MatchedCount, len(result.SkippedFiles)).
		WithSettings(summarizer.Settings{
			FPS:       result.FPS,
			Rotate:    cfg.Rotate,
			OutroMs:   cfg.OutroMs,
			Codec:     string(info.Codec),
			Container: string(info.Container),
			Backend:   string(info.Backend),
			Quality:   quality,
		}).
		WithVideo(summarizer.VideoInfo{
			OutputPath: result.OutputPath,
			FrameCount: result.FrameCount,
			DurationMs: result.DurationMs,
			FileSize:   result.FileSize,
			Width:      result.Width,
			Height:     result.Height,
		}).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(cmd.Summary, summary)
}

// Run executes the formats command.
func (cmd *FormatsCmd) Run() error {
	fmt.Println(l10n.T("Encoder availability:"))

	if path, err := h264encoder.FindFFmpeg(); err == nil {
		fmt.Println(l10n.F("h264 (mp4): ffmpeg found at %s", path))
	} else {
		fmt.Println(l10n.T("h264 (mp4): ffmpeg not found, mjpeg fallback will be used"))
	}
	fmt.Println(l10n.T("mjpeg (mp4): available (pure Go)"))
	fmt.Println(l10n.T("mjpeg (avi): available (pure Go)"))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framereel version %s", version))
	return nil
}
