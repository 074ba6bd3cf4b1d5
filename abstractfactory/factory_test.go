package abstractfactory

import (
	"bytes"
	"context"
	"reflect"
	"testing"
)

func TestFactories_ProduceMatchedFamilies(t *testing.T) {
	tests := []struct {
		name    string
		factory BeverageFactory
		want    []string
	}{
		{
			name:    "coffee family",
			factory: CoffeeFactory{},
			want:    []string{"Here's your hot coffee!", "Adding Milk..."},
		},
		{
			name:    "tea family",
			factory: TeaFactory{},
			want:    []string{"Here's your hot tea!", "Adding Sugar..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := NewCustomer(tt.factory)
			if got := customer.Enjoy(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	want := "Here's your hot coffee!\nAdding Milk...\n\nHere's your hot tea!\nAdding Sugar...\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
