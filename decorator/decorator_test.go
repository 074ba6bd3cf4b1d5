package decorator

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/patternkit/errors"
)

func TestFileSource_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := NewFileSource(filepath.Join(t.TempDir(), "data.txt"))

	if err := src.Write(ctx, []byte("hello")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := src.Read(ctx)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestFileSource_ReadMissing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := src.Read(context.Background())
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeIO {
		t.Errorf("expected IO_ERROR, got %v", err)
	}
}

func TestEncryption_RoundTripAndOpacity(t *testing.T) {
	ctx := context.Background()
	mem := NewMemorySource()
	enc, err := NewEncryption(mem, "secret")
	if err != nil {
		t.Fatalf("NewEncryption error: %v", err)
	}

	plaintext := []byte("salary data")
	if err := enc.Write(ctx, plaintext); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	stored, _ := mem.Read(ctx)
	if bytes.Contains(stored, plaintext) {
		t.Error("stored form should not contain the plaintext")
	}

	got, err := enc.Read(ctx)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("expected %q, got %q", plaintext, got)
	}
}

func TestEncryption_WrongKeyFails(t *testing.T) {
	ctx := context.Background()
	mem := NewMemorySource()

	enc, _ := NewEncryption(mem, "right")
	_ = enc.Write(ctx, []byte("payload"))

	wrong, _ := NewEncryption(mem, "wrong")
	_, err := wrong.Read(ctx)
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeCrypto {
		t.Errorf("expected CRYPTO_ERROR, got %v", err)
	}
}

func TestEncryption_TamperedCiphertext(t *testing.T) {
	ctx := context.Background()
	mem := NewMemorySource()
	_ = mem.Write(ctx, []byte("QQ==")) // valid base64, far too short

	enc, _ := NewEncryption(mem, "secret")
	if _, err := enc.Read(ctx); err == nil {
		t.Error("expected error for truncated ciphertext")
	}
}

func TestCompression_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemorySource()
	comp := NewCompression(mem)

	input := bytes.Repeat([]byte("abcdefgh"), 512)
	if err := comp.Write(ctx, input); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	stored, _ := mem.Read(ctx)
	if len(stored) >= len(input) {
		t.Errorf("expected repetitive input to shrink, got %d >= %d", len(stored), len(input))
	}

	got, err := comp.Read(ctx)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Error("round trip mismatch")
	}
}

func TestStackedDecorators_AnyOrder(t *testing.T) {
	ctx := context.Background()
	input := []byte("Name,Salary\nJohn Smith,100000")

	build := func(inner DataSource, encryptOutside bool) (DataSource, error) {
		if encryptOutside {
			comp := NewCompression(inner)
			return NewEncryption(comp, "k")
		}
		enc, err := NewEncryption(inner, "k")
		if err != nil {
			return nil, err
		}
		return NewCompression(enc), nil
	}

	for _, outside := range []bool{true, false} {
		stack, err := build(NewMemorySource(), outside)
		if err != nil {
			t.Fatalf("build error: %v", err)
		}
		if err := stack.Write(ctx, input); err != nil {
			t.Fatalf("Write error: %v", err)
		}
		got, err := stack.Read(ctx)
		if err != nil {
			t.Fatalf("Read error: %v", err)
		}
		if !bytes.Equal(got, input) {
			t.Errorf("round trip mismatch (encryptOutside=%v)", outside)
		}
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "- Encoded --------------") {
		t.Errorf("expected section headers, got:\n%s", out)
	}
	if strings.Count(out, "Steven Jobs,912000") != 2 {
		t.Errorf("expected the records in input and decoded sections only, got:\n%s", out)
	}
}

func TestDemoTempDirFailure(t *testing.T) {
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "does", "not", "exist"))

	var buf bytes.Buffer
	err := runDemo(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected error when the temp dir cannot be created")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeIO {
		t.Errorf("expected %s, got %s", errors.ErrCodeIO, appErr.Code)
	}
}
