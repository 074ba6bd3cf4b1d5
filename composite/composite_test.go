package composite

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kbukum/patternkit/errors"
)

func buildTree() *Dir {
	dir1 := NewDir("Directory1")
	dir1.Add(NewFile("File1.txt", 120))
	dir1.Add(NewFile("File2.txt", 300))

	dir2 := NewDir("Directory2")
	dir2.Add(NewFile("File3.txt", 80))
	dir2.Add(dir1)
	return dir2
}

func TestDir_SizeAggregates(t *testing.T) {
	root := buildTree()
	if got := root.Size(); got != 500 {
		t.Errorf("expected 500, got %d", got)
	}

	empty := NewDir("empty")
	if got := empty.Size(); got != 0 {
		t.Errorf("expected 0 for empty dir, got %d", got)
	}
}

func TestDir_Find(t *testing.T) {
	root := buildTree()

	n, err := root.Find("File2.txt")
	if err != nil {
		t.Fatalf("expected to find nested file, got %v", err)
	}
	if n.Size() != 300 {
		t.Errorf("expected size 300, got %d", n.Size())
	}

	_, err = root.Find("missing.txt")
	if err == nil {
		t.Fatal("expected error for unknown name")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected %s, got %s", errors.ErrCodeInvalidInput, appErr.Code)
	}
}

func TestDir_ChildBounds(t *testing.T) {
	root := buildTree()

	if _, err := root.Child(0); err != nil {
		t.Errorf("expected child 0, got error %v", err)
	}
	if _, err := root.Child(5); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := root.Child(-1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestDir_Remove(t *testing.T) {
	root := buildTree()

	if err := root.Remove("File3.txt"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if got := root.Size(); got != 420 {
		t.Errorf("expected 420 after removal, got %d", got)
	}
	if err := root.Remove("File3.txt"); err == nil {
		t.Error("expected error removing a missing child")
	}
}

func TestRender_Indentation(t *testing.T) {
	var buf bytes.Buffer
	buildTree().Render(&buf, 0)

	out := buf.String()
	for _, want := range []string{
		"Directory: Directory2\n",
		"  File: File3.txt (80 B)\n",
		"  Directory: Directory1\n",
		"    File: File1.txt (120 B)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}
	if !strings.Contains(buf.String(), "Total size of Directory2: 500 B") {
		t.Errorf("expected aggregate size line, got:\n%s", buf.String())
	}
}
