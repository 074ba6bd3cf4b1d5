package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sink is the adaptee interface: the existing loggers both implement it.
type Sink interface {
	// Log renders a plain message and returns the formatted record.
	Log(message string) string
}

type record struct {
	Message string `json:"message" yaml:"message"`
}

// JSONSink is an existing logger that renders records as JSON.
type JSONSink struct{}

func (JSONSink) Log(message string) string {
	out, err := json.Marshal(record{Message: message})
	if err != nil {
		// A plain string field cannot fail to marshal.
		return fmt.Sprintf(`{"message":%q}`, message)
	}
	return "Logging JSON data:\n" + string(out)
}

// YAMLSink is an existing logger that renders records as YAML.
type YAMLSink struct{}

func (YAMLSink) Log(message string) string {
	out, err := yaml.Marshal(record{Message: message})
	if err != nil {
		return "message: " + message
	}
	return "Logging YAML data:\n" + strings.TrimRight(string(out), "\n")
}
