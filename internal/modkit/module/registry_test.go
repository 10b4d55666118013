package module

import (
	"sync"
	"testing"
)

// stand-in for a module's exported port bundle
type explorePorts struct {
	Prefix string
	Depth  int
}

func TestRegistry_RegisterAndPortsAs(t *testing.T) {
	t.Parallel()
	Reset()

	want := explorePorts{Prefix: "/accounts", Depth: 1}
	Register("explore", want)

	got, ok := PortsAs[explorePorts]("explore")
	if !ok {
		t.Fatal("expected ok for a registered module")
	}
	if got != want {
		t.Fatalf("ports = %v, want %v", got, want)
	}
}

func TestRegistry_UnknownModuleIsZeroAndFalse(t *testing.T) {
	t.Parallel()
	Reset()

	got, ok := PortsAs[explorePorts]("billing")
	if ok {
		t.Fatal("expected ok=false for a module nobody registered")
	}
	if got != (explorePorts{}) {
		t.Fatalf("expected zero value, got %v", got)
	}
}

func TestRegistry_TypeMismatchIsFalse(t *testing.T) {
	t.Parallel()
	Reset()

	Register("explore", explorePorts{Prefix: "/accounts", Depth: 2})

	if _, ok := PortsAs[int]("explore"); ok {
		t.Fatal("expected ok=false when the stored type differs")
	}
}

func TestRegistry_LaterRegistrationWins(t *testing.T) {
	t.Parallel()
	Reset()

	Register("meta", explorePorts{Prefix: "/meta", Depth: 1})
	Register("meta", explorePorts{Prefix: "/meta/v2", Depth: 2})

	got, ok := PortsAs[explorePorts]("meta")
	if !ok || got.Prefix != "/meta/v2" || got.Depth != 2 {
		t.Fatalf("expected the overwrite to win, got %v ok=%v", got, ok)
	}
}

func TestRegistry_ResetClears(t *testing.T) {
	t.Parallel()
	Reset()

	Register("explore", explorePorts{Prefix: "/accounts", Depth: 9})
	Reset()

	if _, ok := PortsAs[explorePorts]("explore"); ok {
		t.Fatal("expected ok=false after reset")
	}
}

func TestRegistry_ConcurrentRegisterAndRead(t *testing.T) {
	t.Parallel()
	Reset()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			Register("explore", explorePorts{Prefix: "/accounts", Depth: i})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = PortsAs[explorePorts]("explore")
		}
	}()

	wg.Wait()

	got, ok := PortsAs[explorePorts]("explore")
	if !ok || got.Prefix != "/accounts" {
		t.Fatalf("unexpected final value %v ok=%v", got, ok)
	}
}
