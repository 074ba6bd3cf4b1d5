package facade

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kbukum/patternkit/errors"
)

func TestNewVideoFile_CodecFromExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"clip.ogg", "ogg"},
		{"video.mp4", "mp4"},
		{"noextension", ""},
	}

	for _, tt := range tests {
		if got := NewVideoFile(tt.name).CodecType; got != tt.want {
			t.Errorf("NewVideoFile(%q): expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestConvert_OggToMP4(t *testing.T) {
	result, err := NewConverter().Convert(context.Background(), "youtubevideo.ogg", "mp4")
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if result.File.Name != "youtubevideo.mp4" {
		t.Errorf("expected youtubevideo.mp4, got %s", result.File.Name)
	}
	if result.File.CodecType != "mp4" {
		t.Errorf("expected mp4 codec, got %s", result.File.CodecType)
	}
	if len(result.Steps) != 4 {
		t.Errorf("expected 4 subsystem steps, got %v", result.Steps)
	}
}

func TestConvert_UnknownSourceCodec(t *testing.T) {
	_, err := NewConverter().Convert(context.Background(), "movie.wmv", "mp4")

	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeUnsupportedFormat {
		t.Errorf("expected UNSUPPORTED_FORMAT, got %v", err)
	}
}

func TestConvert_UnknownTargetFormat(t *testing.T) {
	_, err := NewConverter().Convert(context.Background(), "clip.ogg", "wmv")
	if err == nil {
		t.Error("expected error for unknown target format")
	}
}

func TestConvert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewConverter().Convert(ctx, "clip.ogg", "mp4"); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Conversion completed: youtubevideo.mp4") {
		t.Errorf("expected completion line, got:\n%s", out)
	}
}
