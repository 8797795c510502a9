package scan

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/shots/frame1.png", []byte{1})
	fs.WriteFile("/shots/frame2.png", []byte{2})
	fs.WriteFile("/shots/frame10.png", []byte{3})
	fs.WriteFile("/shots/notes.txt", []byte{4})

	stage := NewStage(fs, logger.NewNoop(), mocks.NewDebugSink(false))

	input := pipeline.DefaultScanInput()
	input.SourceDir = "/shots"
	input.Pattern = "*.png"

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The mock filesystem globs lexicographically, the stage must
	// reorder into natural order.
	want := []string{"/shots/frame1.png", "/shots/frame2.png", "/shots/frame10.png"}
	if !reflect.DeepEqual(result.Paths, want) {
		t.Errorf("expected paths %v, got %v", want, result.Paths)
	}

	if result.SourceDir != "/shots" {
		t.Errorf("expected source dir /shots, got %s", result.SourceDir)
	}
	if result.Pattern != "*.png" {
		t.Errorf("expected pattern *.png, got %s", result.Pattern)
	}
}

func TestStage_Execute_DefaultPatternMatchesEverything(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/shots/a.png", []byte{1})
	fs.WriteFile("/shots/b.jpg", []byte{2})

	stage := NewStage(fs, logger.NewNoop(), mocks.NewDebugSink(false))

	input := pipeline.DefaultScanInput()
	input.SourceDir = "/shots"

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Paths) != 2 {
		t.Errorf("expected 2 paths, got %d", len(result.Paths))
	}
}

func TestStage_Execute_NoMatches(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/shots/notes.txt", []byte{1})

	stage := NewStage(fs, logger.NewNoop(), mocks.NewDebugSink(false))

	input := pipeline.DefaultScanInput()
	input.SourceDir = "/shots"
	input.Pattern = "*.png"

	_, err := stage.Execute(context.Background(), input)
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}

	// The error names the folder and the pattern
	if !strings.Contains(err.Error(), "/shots") || !strings.Contains(err.Error(), "*.png") {
		t.Errorf("expected error to name folder and pattern, got %q", err.Error())
	}
}

func TestStage_Execute_GlobError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.GlobFunc = func(pattern string) ([]string, error) {
		return nil, fmt.Errorf("permission denied")
	}

	stage := NewStage(fs, logger.NewNoop(), mocks.NewDebugSink(false))

	input := pipeline.DefaultScanInput()
	input.SourceDir = "/shots"

	_, err := stage.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNoImages) {
		t.Error("glob failure should not map to ErrNoImages")
	}
}

func TestStage_Execute_WithDebugSink(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/shots/frame1.png", []byte{1})

	sink := mocks.NewDebugSink(true)
	stage := NewStage(fs, logger.NewNoop(), sink)

	input := pipeline.DefaultScanInput()
	input.SourceDir = "/shots"

	_, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sink.ScanJSON == nil {
		t.Fatal("expected scan debug output")
	}
	if !strings.Contains(string(sink.ScanJSON), "frame1.png") {
		t.Errorf("expected scan JSON to list matches, got %s", sink.ScanJSON)
	}
}

func TestSortNatural(t *testing.T) {
	cases := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "numeric suffixes",
			paths: []string{"img10.png", "img2.png", "img1.png"},
			want:  []string{"img1.png", "img2.png", "img10.png"},
		},
		{
			name:  "zero padded",
			paths: []string{"frame_0010.png", "frame_0002.png", "frame_0001.png"},
			want:  []string{"frame_0001.png", "frame_0002.png", "frame_0010.png"},
		},
		{
			name:  "mixed digits and text",
			paths: []string{"shot2b.png", "shot2a.png", "shot10a.png", "shot1.png"},
			want:  []string{"shot1.png", "shot2a.png", "shot2b.png", "shot10a.png"},
		},
		{
			name:  "compared by base name",
			paths: []string{"/b/img2.png", "/a/img10.png"},
			want:  []string{"/b/img2.png", "/a/img10.png"},
		},
		{
			name:  "equal base names fall back to full path",
			paths: []string{"/b/img1.png", "/a/img1.png"},
			want:  []string{"/a/img1.png", "/b/img1.png"},
		},
		{
			name:  "empty",
			paths: []string{},
			want:  []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			paths := make([]string, len(tc.paths))
			copy(paths, tc.paths)
			SortNatural(paths)
			if !reflect.DeepEqual(paths, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, paths)
			}
		})
	}
}
