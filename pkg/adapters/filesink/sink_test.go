package filesink

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New(testBaseDir, fs, renderer)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveScanJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New(testBaseDir, fs, renderer)

	data := []byte(`{"paths": ["1.png", "2.png"]}`)
	err := sink.SaveScanJSON(data)
	if err != nil {
		t.Fatalf("SaveScanJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "scan.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
	sink := New(testBaseDir, fs, renderer)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	err := sink.SaveFrame(5, img)
	if err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "frame-0005.png")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveRunJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New(testBaseDir, fs, renderer)

	data := []byte(`{"frames": 30}`)
	err := sink.SaveRunJSON(data)
	if err != nil {
		t.Fatalf("SaveRunJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "run.json")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_MultipleFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89}, nil
		},
	}
	sink := New(testBaseDir, fs, renderer)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 10; i++ {
		err := sink.SaveFrame(i, img)
		if err != nil {
			t.Fatalf("SaveFrame %d failed: %v", i, err)
		}
	}

	// Check all files exist
	files := fs.GetAllFiles()
	expectedCount := 10
	count := 0
	for path := range files {
		if len(path) > 0 {
			count++
		}
	}

	if count != expectedCount {
		t.Errorf("expected %d files, got %d", expectedCount, count)
	}
}
