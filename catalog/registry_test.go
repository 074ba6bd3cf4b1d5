package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/kbukum/patternkit/errors"
)

func newDemo(name string, cat Category, fn func(ctx context.Context, w io.Writer) error) Demo {
	if fn == nil {
		fn = func(_ context.Context, w io.Writer) error {
			fmt.Fprintln(w, name)
			return nil
		}
	}
	return Func{DemoName: name, DemoCategory: cat, DemoBrief: name + " demo", RunFunc: fn}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(newDemo("strategy", CategoryBehavioral, nil)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	d, err := r.Get("strategy")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.Name() != "strategy" {
		t.Errorf("expected strategy, got %s", d.Name())
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newDemo("builder", CategoryCreational, nil))

	err := r.Register(newDemo("builder", CategoryCreational, nil))
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeAlreadyRegistered {
		t.Errorf("expected DEMO_ALREADY_REGISTERED, got %v", err)
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	r := NewRegistry()

	err := r.Register(newDemo("", CategoryStructural, nil))
	if err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("nope")
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeDemoNotFound {
		t.Errorf("expected DEMO_NOT_FOUND, got %v", err)
	}
}

func TestRegistry_ListOrder(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newDemo("proxy", CategoryStructural, nil))
	_ = r.Register(newDemo("strategy", CategoryBehavioral, nil))
	_ = r.Register(newDemo("adapter", CategoryStructural, nil))
	_ = r.Register(newDemo("builder", CategoryCreational, nil))

	want := []string{"strategy", "builder", "adapter", "proxy"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Run(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newDemo("composite", CategoryStructural, nil))

	var buf bytes.Buffer
	if err := r.Run(context.Background(), "composite", &buf); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if buf.String() != "composite\n" {
		t.Errorf("expected demo output, got %q", buf.String())
	}
}

func TestRegistry_RunWrapsFailure(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newDemo("facade", CategoryStructural, func(context.Context, io.Writer) error {
		return fmt.Errorf("codec missing")
	}))

	err := r.Run(context.Background(), "facade", io.Discard)
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeDemoFailed {
		t.Fatalf("expected DEMO_FAILED, got %v", err)
	}
	if appErr.Details["demo"] != "facade" {
		t.Errorf("expected demo detail, got %v", appErr.Details)
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = r.Register(newDemo(fmt.Sprintf("demo-%d", n), CategoryCreational, nil))
		}(i)
	}
	wg.Wait()

	if got := len(r.Names()); got != 20 {
		t.Errorf("expected 20 demos, got %d", got)
	}
}
