package facade

import (
	"fmt"
	"strings"

	"github.com/kbukum/patternkit/errors"
)

// VideoFile names a clip and carries the codec type read from its extension.
type VideoFile struct {
	Name      string
	CodecType string
}

// NewVideoFile derives the codec type from the file extension.
func NewVideoFile(name string) VideoFile {
	codecType := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		codecType = name[idx+1:]
	}
	return VideoFile{Name: name, CodecType: codecType}
}

// Codec is a compression codec in the subsystem.
type Codec interface {
	Type() string
}

// MPEG4Codec compresses to mp4.
type MPEG4Codec struct{}

func (MPEG4Codec) Type() string { return "mp4" }

// OggCodec compresses to ogg.
type OggCodec struct{}

func (OggCodec) Type() string { return "ogg" }

// ExtractCodec determines the codec a file was encoded with.
func ExtractCodec(file VideoFile) (Codec, error) {
	switch file.CodecType {
	case "mp4":
		return MPEG4Codec{}, nil
	case "ogg":
		return OggCodec{}, nil
	default:
		return nil, errors.UnsupportedFormat(file.CodecType)
	}
}

// BitrateReader re-encodes buffers between codecs.
type BitrateReader struct{}

// Read loads the file with its source codec.
func (BitrateReader) Read(file VideoFile, codec Codec) VideoFile {
	return VideoFile{Name: file.Name, CodecType: codec.Type()}
}

// Convert re-encodes the buffer with the destination codec.
func (BitrateReader) Convert(buffer VideoFile, codec Codec) VideoFile {
	base := buffer.Name
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[:idx]
	}
	return VideoFile{Name: fmt.Sprintf("%s.%s", base, codec.Type()), CodecType: codec.Type()}
}

// AudioMixer fixes the audio track after re-encoding.
type AudioMixer struct{}

func (AudioMixer) Fix(file VideoFile) VideoFile {
	return file
}
