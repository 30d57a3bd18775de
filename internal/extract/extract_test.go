package extract

import (
	"errors"
	"reflect"
	"testing"
)

type stubStrategy struct{ name string }

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Extract(string, string, map[string]string) (string, error) {
	return s.name, nil
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(stubStrategy{name: "inosmi"})

	got, err := reg.Resolve("inosmi")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Name() != "inosmi" {
		t.Fatalf("unexpected strategy: %s", got.Name())
	}

	if _, err := reg.Resolve("missing"); !errors.Is(err, ErrUnknownExtractor) {
		t.Fatalf("expected ErrUnknownExtractor, got %v", err)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()

	var reg Registry
	reg.Register(stubStrategy{name: "a"})
	reg.Register(stubStrategy{name: "a"})

	if len(reg.strategies) != 1 {
		t.Fatalf("expected single strategy, got %d", len(reg.strategies))
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(stubStrategy{name: "readability"})
	reg.Register(stubStrategy{name: "inosmi"})

	if got := reg.Names(); !reflect.DeepEqual(got, []string{"inosmi", "readability"}) {
		t.Fatalf("unexpected names: %v", got)
	}
}
