package mjpegencoder

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// buildMP4 creates an MP4 container from the compressed JPEG frames.
//
// The container uses a single video track with a 'jpeg' sample entry
// and one fragment holding all samples. Every MJPEG frame is
// independently decodable, so all samples carry sync flags.
func (e *Encoder) buildMP4() ([]byte, error) {
	if len(e.frames) == 0 {
		return nil, ErrNoFrames
	}

	timescale := uint32(e.fps * 1000)
	trackID := uint32(1)

	// Create initialization segment
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")

	trak := init.Moov.Trak

	// The 'jpeg' sample entry needs no codec configuration child,
	// every sample is a complete JFIF image.
	entry := mp4.CreateVisualSampleEntryBox("jpeg", uint16(e.width), uint16(e.height), nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	// Set track header dimensions
	trak.Tkhd.Width = mp4.Fixed32(e.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(e.height << 16)

	// Create fragment
	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	// Add samples to fragment
	for i, frame := range e.frames {
		// Calculate duration in timescale units
		var dur uint32
		if i < len(e.frames)-1 {
			nextTs := e.frames[i+1].timestampUs
			dur = uint32((nextTs - frame.timestampUs) * int64(timescale) / 1000000)
		}
		if dur == 0 {
			dur = uint32(float64(timescale) / e.fps)
		}

		// Decode time in timescale units
		decodeTime := uint64(frame.timestampUs) * uint64(timescale) / 1000000

		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(frame.data)),
				Dur:   dur,
			},
			DecodeTime: decodeTime,
			Data:       frame.data,
		})
	}

	// Write to buffer
	var buf bytes.Buffer

	// Write ftyp
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}

	// Write moov (from init segment)
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}

	// Write fragment (moof + mdat)
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}
