package bridge

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "bridge",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Swap database drivers under one abstraction at runtime",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	db := NewAppDB(MySQLDriver{})
	for _, line := range db.FetchUsers() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "\nSwitching driver...")
	fmt.Fprintln(w)

	db.SwitchDriver(PostgresDriver{})
	for _, line := range db.FetchUsers() {
		fmt.Fprintln(w, line)
	}
	return nil
}
