package adapter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kbukum/patternkit/errors"
)

var payload = XMLData{Data: "<message>hello from xml</message>"}

func TestSinkAdapter_JSON(t *testing.T) {
	a := NewSinkAdapter(JSONSink{})

	out, err := a.LogXML(payload)
	if err != nil {
		t.Fatalf("LogXML error: %v", err)
	}
	if !strings.Contains(out, `{"message":"hello from xml"}`) {
		t.Errorf("expected JSON record, got %q", out)
	}
}

func TestSinkAdapter_SwapToYAML(t *testing.T) {
	a := NewSinkAdapter(JSONSink{})
	a.SetSink(YAMLSink{})

	out, err := a.LogXML(payload)
	if err != nil {
		t.Fatalf("LogXML error: %v", err)
	}
	if !strings.Contains(out, "message: hello from xml") {
		t.Errorf("expected YAML record, got %q", out)
	}
}

func TestEmbeddedAdapters(t *testing.T) {
	tests := []struct {
		name    string
		adapter XMLLogger
		want    string
	}{
		{"json embedded", JSONAdapter{}, "Logging JSON data:"},
		{"yaml embedded", YAMLAdapter{}, "Logging YAML data:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.adapter.LogXML(payload)
			if err != nil {
				t.Fatalf("LogXML error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output, got %q", tt.want, out)
			}
		})
	}
}

func TestLogXML_RejectsNonXML(t *testing.T) {
	a := NewSinkAdapter(JSONSink{})

	_, err := a.LogXML(XMLData{Data: "just a plain string"})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeUnsupportedFormat {
		t.Errorf("expected UNSUPPORTED_FORMAT, got %v", err)
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "Logging JSON data:"); got != 2 {
		t.Errorf("expected 2 JSON records (object + embedded), got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "Logging YAML data:"); got != 2 {
		t.Errorf("expected 2 YAML records (object + embedded), got %d:\n%s", got, out)
	}
}
