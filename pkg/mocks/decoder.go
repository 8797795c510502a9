package mocks

import (
	"image"
	"io"

	"github.com/user/framereel/pkg/ports"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
type FrameDecoder struct {
	DecodeFileFunc func(path string) (image.Image, error)
	DecodeFunc     func(r io.Reader) (image.Image, error)
	FormatsFunc    func() []string

	// Recorded calls for verification
	DecodeFileCalls []string
}

func (m *FrameDecoder) DecodeFile(path string) (image.Image, error) {
	m.DecodeFileCalls = append(m.DecodeFileCalls, path)
	if m.DecodeFileFunc != nil {
		return m.DecodeFileFunc(path)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *FrameDecoder) Decode(r io.Reader) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(r)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *FrameDecoder) Formats() []string {
	if m.FormatsFunc != nil {
		return m.FormatsFunc()
	}
	return []string{"jpeg", "png"}
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)
