package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// Register all pattern demos with the default catalogue.
	_ "github.com/kbukum/patternkit/abstractfactory"
	_ "github.com/kbukum/patternkit/adapter"
	_ "github.com/kbukum/patternkit/bridge"
	_ "github.com/kbukum/patternkit/builder"
	_ "github.com/kbukum/patternkit/composite"
	_ "github.com/kbukum/patternkit/decorator"
	_ "github.com/kbukum/patternkit/facade"
	_ "github.com/kbukum/patternkit/factorymethod"
	_ "github.com/kbukum/patternkit/flyweight"
	_ "github.com/kbukum/patternkit/prototype"
	_ "github.com/kbukum/patternkit/proxy"
	_ "github.com/kbukum/patternkit/singleton"
	_ "github.com/kbukum/patternkit/strategy"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
