package prototype

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestClone_PreservesState(t *testing.T) {
	coffee := NewCoffee()
	coffee.SetKind("dark roast")

	clone := coffee.Clone()
	if got := clone.Serve(); got != "Here's your dark roast coffee!" {
		t.Errorf("expected clone to carry state, got %q", got)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	tea := NewTea()
	clone := tea.Clone()
	clone.SetKind("earl grey")

	if tea.Kind != "green" {
		t.Errorf("mutating a clone touched the prototype: %s", tea.Kind)
	}
}

func TestMilk_DeepVsShallowClone(t *testing.T) {
	milk := NewMilk()

	deep := milk.Clone().(*Milk)
	deep.Notes[0] = "frothed"
	if milk.Notes[0] != "steamed" {
		t.Errorf("deep clone shares notes with the prototype: %v", milk.Notes)
	}

	shallow := milk.ShallowClone()
	shallow.Notes[0] = "scalded"
	if milk.Notes[0] != "scalded" {
		t.Errorf("shallow clone should alias the prototype's notes, got %v", milk.Notes)
	}
}

func TestFactory_StampsIndependentClones(t *testing.T) {
	factory := NewFactory(NewCoffee(), NewMilk())

	a := NewCustomer(factory)
	b := NewCustomer(factory)
	a.Order("dark roast", "Almond")

	got := b.Enjoy()
	if got[0] != "Here's your house blend coffee!" {
		t.Errorf("customer A's order leaked into customer B: %q", got[0])
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Here's your dark roast coffee!",
		"Adding Almond Milk...",
		"Here's your earl grey tea!",
		"Adding Brown Sugar...",
		"Prototypes untouched: house blend / Whole Milk",
		"prototype notes: [scalded]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
