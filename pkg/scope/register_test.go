package scope_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-markup/pkg/scope"
)

func TestRegister_OutOfScopeByDefault(t *testing.T) {
	reg := scope.New()

	for i := 0; i < 3; i++ {
		if _, err := reg.Lookup("theme"); !errors.Is(err, scope.ErrOutOfScopeContextAccess) {
			t.Fatalf("attempt %d: expected out of scope error, got %v", i, err)
		}
	}
	if _, err := reg.Context(); !errors.Is(err, scope.ErrOutOfScopeContextAccess) {
		t.Fatalf("expected out of scope error from Context, got %v", err)
	}
	if reg.Active() {
		t.Fatalf("empty register must not be active")
	}
}

func TestRegister_EnterAndRestore(t *testing.T) {
	reg := scope.New()

	restoreOuter := reg.Enter(scope.Context{"theme": "dark"})
	restoreInner := reg.Enter(scope.Context{"theme": "light"})

	got, err := reg.Lookup("theme")
	if err != nil {
		t.Fatalf("lookup inner: %v", err)
	}
	if got != "light" {
		t.Fatalf("inner theme mismatch: %v", got)
	}

	restoreInner()
	got, err = reg.Lookup("theme")
	if err != nil {
		t.Fatalf("lookup outer: %v", err)
	}
	if got != "dark" {
		t.Fatalf("outer theme mismatch after restore: %v", got)
	}

	restoreOuter()
	if reg.Depth() != 0 {
		t.Fatalf("expected empty register, depth %d", reg.Depth())
	}
}

func TestRegister_SealHidesContext(t *testing.T) {
	reg := scope.New()
	restore := reg.Enter(scope.Context{"user": "ada"})
	defer restore()

	unseal := reg.Seal()
	if _, err := reg.Lookup("user"); !errors.Is(err, scope.ErrOutOfScopeContextAccess) {
		t.Fatalf("sealed register must refuse lookups, got %v", err)
	}
	unseal()

	got, err := reg.Lookup("user")
	if err != nil || got != "ada" {
		t.Fatalf("unsealed lookup mismatch: %v, %v", got, err)
	}
}

func TestRegister_RestoreOnPanic(t *testing.T) {
	reg := scope.New()
	restore := reg.Enter(scope.Context{"a": 1})
	defer restore()

	func() {
		defer func() { _ = recover() }()
		inner := reg.Enter(scope.Context{"a": 2})
		defer inner()
		panic("boom")
	}()

	if reg.Depth() != 1 {
		t.Fatalf("expected depth 1 after panic, got %d", reg.Depth())
	}
	got, _ := reg.Lookup("a")
	if got != 1 {
		t.Fatalf("expected outer value after panic, got %v", got)
	}
}

func TestRegister_RestoreIsIdempotent(t *testing.T) {
	reg := scope.New()
	outer := reg.Enter(scope.Context{})
	inner := reg.Enter(scope.Context{})
	inner()
	inner()
	if reg.Depth() != 1 {
		t.Fatalf("double restore must not pop the outer scope, depth %d", reg.Depth())
	}
	outer()
}

func TestAccessor_WholeMappingAndEntry(t *testing.T) {
	reg := scope.New()
	access := reg.Accessor()

	if _, err := access(); !errors.Is(err, scope.ErrOutOfScopeContextAccess) {
		t.Fatalf("expected out of scope error, got %v", err)
	}

	restore := reg.Enter(scope.Context{"theme": "dark", "lang": "en"})
	defer restore()

	whole, err := access()
	if err != nil {
		t.Fatalf("access whole: %v", err)
	}
	want := scope.Context{"theme": "dark", "lang": "en"}
	if diff := cmp.Diff(want, whole); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}

	entry, err := access("lang")
	if err != nil {
		t.Fatalf("access entry: %v", err)
	}
	if entry != "en" {
		t.Fatalf("entry mismatch: %v", entry)
	}

	missing, err := access("missing")
	if err != nil || missing != nil {
		t.Fatalf("missing entry should be nil without error, got %v, %v", missing, err)
	}
}

func TestContext_CloneIsShallowCopy(t *testing.T) {
	var nilCtx scope.Context
	if clone := nilCtx.Clone(); clone == nil {
		t.Fatalf("clone of nil context must be non-nil")
	}

	src := scope.Context{"a": 1}
	clone := src.Clone()
	clone["a"] = 2
	if src["a"] != 1 {
		t.Fatalf("clone must not alias the source map")
	}
}
