package adapter

import (
	"regexp"

	"github.com/kbukum/patternkit/errors"
)

// XMLData is a payload in the producer's format.
type XMLData struct {
	Data string
}

// XMLLogger is the target interface: what clients holding XML payloads need.
type XMLLogger interface {
	LogXML(data XMLData) (string, error)
}

var messagePattern = regexp.MustCompile(`<message>(.*?)</message>`)

// extractMessage pulls the content between the <message> tags.
func extractMessage(data XMLData) (string, error) {
	m := messagePattern.FindStringSubmatch(data.Data)
	if m == nil {
		return "", errors.UnsupportedFormat("expected <message>...</message> XML")
	}
	return m[1], nil
}

// SinkAdapter is the object adapter: it composes a Sink and can swap it at
// runtime.
type SinkAdapter struct {
	sink Sink
}

// NewSinkAdapter adapts the given sink to the XMLLogger interface.
func NewSinkAdapter(sink Sink) *SinkAdapter {
	return &SinkAdapter{sink: sink}
}

// SetSink swaps the adaptee.
func (a *SinkAdapter) SetSink(sink Sink) { a.sink = sink }

func (a *SinkAdapter) LogXML(data XMLData) (string, error) {
	message, err := extractMessage(data)
	if err != nil {
		return "", err
	}
	return a.sink.Log(message), nil
}

// JSONAdapter is the embedded form: the adaptee is fixed at compile time.
type JSONAdapter struct {
	JSONSink
}

func (a JSONAdapter) LogXML(data XMLData) (string, error) {
	message, err := extractMessage(data)
	if err != nil {
		return "", err
	}
	return a.Log(message), nil
}

// YAMLAdapter is the embedded form over the YAML sink.
type YAMLAdapter struct {
	YAMLSink
}

func (a YAMLAdapter) LogXML(data XMLData) (string, error) {
	message, err := extractMessage(data)
	if err != nil {
		return "", err
	}
	return a.Log(message), nil
}
