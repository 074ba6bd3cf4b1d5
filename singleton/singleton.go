package singleton

import (
	"sync"
	"sync/atomic"
	"time"
)

// Settings is the shared instance both variants hand out.
type Settings struct {
	Value string
}

// constructionDelay widens the check-then-act window in the naive variant so
// the lost-update is observable in a short demo. Shrunk in tests.
var constructionDelay = 50 * time.Millisecond

// lazyInit constructs Settings at most once. The zero value is ready to use,
// so each demo run can hold its own independent instance.
type lazyInit struct {
	once     sync.Once
	instance *Settings
}

func (l *lazyInit) get(value string) *Settings {
	l.once.Do(func() {
		time.Sleep(constructionDelay)
		l.instance = &Settings{Value: value}
	})
	return l.instance
}

// naiveInit is the unguarded variant: check, construct, store. Two
// concurrent callers can both see nil and both construct; the second store
// overwrites the first. The pointer itself is atomic, so reads are never
// torn, but the single-instance guarantee is not kept.
type naiveInit struct {
	instance atomic.Pointer[Settings]
}

func (n *naiveInit) get(value string) *Settings {
	if s := n.instance.Load(); s != nil {
		return s
	}
	time.Sleep(constructionDelay)
	s := &Settings{Value: value}
	n.instance.Store(s)
	return s
}

var processWide lazyInit

// Instance returns the process-wide Settings, constructing it on first call.
// The first caller's value wins; later values are ignored.
func Instance(value string) *Settings {
	return processWide.get(value)
}

var processWideNaive naiveInit

// NaiveInstance is the process-wide unguarded variant. See naiveInit for
// why the single-instance guarantee does not hold under concurrency.
func NaiveInstance(value string) *Settings {
	return processWideNaive.get(value)
}
