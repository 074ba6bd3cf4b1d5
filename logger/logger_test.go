package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected stderr, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("demo", "strategy", "count", 3)

	if m["demo"] != "strategy" {
		t.Errorf("expected strategy, got %v", m["demo"])
	}
	if m["count"] != 3 {
		t.Errorf("expected 3, got %v", m["count"])
	}
}

func TestFields_OddArguments(t *testing.T) {
	m := Fields("demo", "proxy", "dangling")

	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	log := Nop().WithComponent("catalog")
	if log == nil {
		t.Fatal("expected a logger")
	}
	// Must not panic when logging through a component-tagged nop logger.
	log.Info("registered", Fields("demo", "builder"))
}
