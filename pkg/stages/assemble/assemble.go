// Package assemble implements the frame decoding and encoding stage.
package assemble

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// Stage decodes the matched images and feeds them to the video encoder
// in order. Images that fail to decode are skipped with a warning, the
// remaining frames close ranks so the output has no gaps.
type Stage struct {
	decoder  ports.FrameDecoder
	renderer ports.Renderer
	encoder  ports.VideoEncoder
	progress ports.ProgressReporter
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(
	decoder ports.FrameDecoder,
	renderer ports.Renderer,
	encoder ports.VideoEncoder,
	progress ports.ProgressReporter,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		decoder:  decoder,
		renderer: renderer,
		encoder:  encoder,
		progress: progress,
		sink:     sink,
		logger:   logger.WithComponent("assemble"),
	}
}

// Execute converts the image sequence into an encoded video.
//
// The first image determines the output dimensions. It is decoded once
// for sizing and again in the main loop, so a file that vanishes in
// between is skipped like any other unreadable file.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	result := pipeline.AssembleResult{}

	if len(input.Paths) == 0 {
		return result, fmt.Errorf("no input images")
	}

	// Establish output dimensions from the first image
	first, err := s.decoder.DecodeFile(input.Paths[0])
	if err != nil {
		return result, fmt.Errorf("read first image %s: %w", input.Paths[0], err)
	}
	bounds := first.Bounds()
	s.logger.Debug("First frame decoded: %dx%d", bounds.Dx(), bounds.Dy())

	if input.Rotate {
		first = s.renderer.RotateCCW(first)
		bounds = first.Bounds()
	}
	width := bounds.Dx()
	height := bounds.Dy()
	s.logger.Debug("Output dimensions: %dx%d", width, height)

	opts := ports.EncoderOptions{
		Bitrate:     input.Bitrate,
		Quality:     input.Quality,
		JPEGQuality: input.JPEGQuality,
	}

	if err := s.encoder.Begin(width, height, input.FPS, opts); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	s.logger.Debug("Encoding %d frames at %.1f fps", len(input.Paths), input.FPS)
	s.progress.Begin(len(input.Paths))

	written := 0
	var skipped []string
	var lastImg image.Image
	lastTimestampMs := 0

	for i, path := range input.Paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		img, err := s.decoder.DecodeFile(path)
		if err != nil {
			s.logger.Warn("Could not read image %s", path)
			skipped = append(skipped, path)
			continue
		}

		if input.Rotate {
			img = s.renderer.RotateCCW(img)
		}

		if input.Stamp.Enabled {
			img = s.stampFrame(img, i, path, input.Stamp)
		}

		// Save frame debug output
		if s.sink.Enabled() {
			s.sink.SaveFrame(i, img)
		}

		timestampMs := frameTimestampMs(written, input.FPS)
		if err := s.encoder.EncodeFrame(img, timestampMs); err != nil {
			return result, fmt.Errorf("encode frame %s: %w", path, err)
		}
		written++
		lastImg = img
		lastTimestampMs = timestampMs

		s.progress.Step(i + 1)
	}

	// Hold the last frame for the outro
	if input.OutroMs > 0 && lastImg != nil {
		s.logger.Debug("Holding last frame for %d ms", input.OutroMs)
		outroTimestamp := lastTimestampMs + input.OutroMs
		if err := s.encoder.EncodeFrame(lastImg, outroTimestamp); err != nil {
			return result, fmt.Errorf("encode outro frame: %w", err)
		}
	}

	if len(skipped) > 0 {
		s.logger.Debug("Skipped %d of %d images", len(skipped), len(input.Paths))
	}
	s.progress.Done(written, len(skipped))

	data, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}

	durationMs := frameTimestampMs(written, input.FPS)
	if written > 0 {
		durationMs += input.OutroMs
	}

	result.VideoData = data
	result.Size = pipeline.Dimension{Width: width, Height: height}
	result.FrameCount = written
	result.Skipped = skipped
	result.DurationMs = durationMs

	return result, nil
}

// frameTimestampMs converts a frame ordinal to its presentation time.
// Skipped frames do not advance the clock.
func frameTimestampMs(frame int, fps float64) int {
	if fps <= 0 {
		return 0
	}
	return int(float64(frame) * 1000.0 / fps)
}

// stampFrame draws the frame index and source file name in the bottom
// left corner on a translucent box.
func (s *Stage) stampFrame(img image.Image, index int, path string, opts pipeline.StampOptions) image.Image {
	bounds := img.Bounds()
	canvas := s.renderer.CreateCanvas(bounds.Dx(), bounds.Dy(), color.Transparent)
	canvas.DrawImage(img, 0, 0)

	text := fmt.Sprintf("%04d %s", index, filepath.Base(path))
	style := ports.TextStyle{
		FontSize: opts.FontSize,
		FontPath: opts.FontPath,
		Color:    color.White,
		Align:    ports.AlignLeft,
	}

	textW, textH := canvas.MeasureText(text, style)
	const margin = 4
	const padding = 4
	boxH := int(textH) + padding*2
	boxY := bounds.Dy() - margin - boxH
	canvas.DrawRect(margin, boxY, int(textW)+padding*2, boxH, color.RGBA{A: 160})
	canvas.DrawText(text, margin+padding, boxY+padding+int(textH/2), style)

	return canvas.ToImage()
}
