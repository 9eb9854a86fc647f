package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type testConfig struct {
	Name  string   `yaml:"name"`
	Pages []string `yaml:"pages"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		var cfg testConfig
		data := []byte("name: algebra\npages:\n  - one.md\n  - two.md\n")

		if err := Unmarshal(data, &cfg); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cfg.Name != "algebra" {
			t.Errorf("Name = %q, want algebra", cfg.Name)
		}
		if len(cfg.Pages) != 2 {
			t.Errorf("Pages = %v, want 2 entries", cfg.Pages)
		}
	})

	t.Run("empty data rejected", func(t *testing.T) {
		var cfg testConfig
		if err := Unmarshal(nil, &cfg); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination rejected", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input rejected", func(t *testing.T) {
		var cfg testConfig
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		if err := Unmarshal(data, &cfg); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		var cfg testConfig
		data := []byte("name: x\nextra: y\n")
		if err := Unmarshal(data, &cfg); err != nil {
			t.Errorf("Unmarshal() error = %v", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		var cfg testConfig
		if err := UnmarshalStrict([]byte("name: x"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		var cfg testConfig
		if err := UnmarshalStrict([]byte("name: x\nextra: y\n"), &cfg); err == nil {
			t.Error("UnmarshalStrict() should reject unknown fields")
		}
	})
}
