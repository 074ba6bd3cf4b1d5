package facade

import (
	"context"

	"github.com/kbukum/patternkit/errors"
	"github.com/kbukum/patternkit/logger"
)

// Result is what the facade hands back: the converted file and the steps
// the subsystem went through.
type Result struct {
	File  VideoFile
	Steps []string
}

// Converter is the facade. One call drives codec extraction, bitrate
// conversion, and audio fixing.
type Converter struct {
	reader BitrateReader
	mixer  AudioMixer
	log    *logger.Logger
}

// NewConverter creates the facade.
func NewConverter() *Converter {
	return &Converter{log: logger.WithComponent("facade")}
}

// Convert re-encodes the named file into the requested format.
func (c *Converter) Convert(ctx context.Context, filename, format string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, errors.New(errors.ErrCodeTimeout, "conversion cancelled", 0).WithCause(err)
	}

	c.log.Info("Conversion started", logger.Fields("file", filename, "format", format))

	file := NewVideoFile(filename)
	sourceCodec, err := ExtractCodec(file)
	if err != nil {
		return Result{}, err
	}

	var destinationCodec Codec
	switch format {
	case "mp4":
		destinationCodec = MPEG4Codec{}
	case "ogg":
		destinationCodec = OggCodec{}
	default:
		return Result{}, errors.UnsupportedFormat(format)
	}

	buffer := c.reader.Read(file, sourceCodec)
	converted := c.reader.Convert(buffer, destinationCodec)
	fixed := c.mixer.Fix(converted)

	c.log.Info("Conversion completed", logger.Fields("file", fixed.Name))

	return Result{
		File: fixed,
		Steps: []string{
			"extracted codec: " + sourceCodec.Type(),
			"read bitrate as: " + buffer.CodecType,
			"converted to: " + converted.CodecType,
			"fixed audio track",
		},
	}, nil
}
