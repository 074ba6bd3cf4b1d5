package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "adapter",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Log XML payloads through JSON and YAML sinks via adapters",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	payload := XMLData{Data: "<message>Hello I am a message from XML server being logged as</message>"}

	// Object form: one adapter, swappable sink.
	obj := NewSinkAdapter(JSONSink{})
	out, err := obj.LogXML(payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	fmt.Fprintln(w)

	obj.SetSink(YAMLSink{})
	out, err = obj.LogXML(payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	fmt.Fprintln(w)

	// Embedded form: one adapter per sink.
	for _, embedded := range []XMLLogger{JSONAdapter{}, YAMLAdapter{}} {
		out, err := embedded.LogXML(payload)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
