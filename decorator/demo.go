package decorator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kbukum/patternkit/catalog"
	"github.com/kbukum/patternkit/errors"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "decorator",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Stack compression and encryption onto a file data source",
		RunFunc:      runDemo,
	})
}

func runDemo(ctx context.Context, w io.Writer) error {
	records := "Name,Salary\nJohn Smith,100000\nSteven Jobs,912000"

	dir, err := os.MkdirTemp("", "decorator-demo")
	if err != nil {
		return errors.IO("create temp dir", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "OutputDemo.txt")

	plain := NewFileSource(path)
	encrypted, err := NewEncryption(plain, "decorator-demo-key")
	if err != nil {
		return err
	}
	encoded := NewCompression(encrypted)

	if err := encoded.Write(ctx, []byte(records)); err != nil {
		return err
	}

	// Reading through the undecorated source shows what actually hit disk.
	raw, err := plain.Read(ctx)
	if err != nil {
		return err
	}
	decoded, err := encoded.Read(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "- Input ----------------")
	fmt.Fprintf(w, "%s\n\n", records)
	fmt.Fprintln(w, "- Encoded --------------")
	fmt.Fprintf(w, "%s\n\n", raw)
	fmt.Fprintln(w, "- Decoded --------------")
	fmt.Fprintf(w, "%s\n", decoded)
	return nil
}
