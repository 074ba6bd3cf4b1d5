// Package adapter demonstrates the Adapter pattern: translating the
// interface a client expects into the interface an existing component
// provides.
//
// Intent: convert the interface of a type into another interface clients
// expect, letting types work together that otherwise could not.
//
// Applicability:
//   - An existing component (here: JSON and YAML sinks that log plain
//     messages) must serve clients speaking a different protocol (XML
//     payloads).
//   - The adaptee cannot or should not change.
//
// Two classic forms are shown. SinkAdapter is the object adapter: it holds a
// Sink by composition and can swap it at runtime. JSONAdapter and
// YAMLAdapter stand in for the class adapter: Go has no inheritance, so
// struct embedding plays that role, and each embedded adapter is fixed to
// its adaptee at compile time. The object form is almost always the one to
// reach for; the embedded form exists to make the textbook distinction
// concrete.
//
// Trade-offs: an adapter per protocol pair adds indirection, and the
// embedded form leaks the adaptee's full method set into the adapter's API.
//
// The demo logs the same XML payload through both adapters in both forms.
package adapter
