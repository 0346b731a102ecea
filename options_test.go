package errv_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mickamy/errv"
	"github.com/mickamy/errv/alloc"
)

// Not parallel: replaces the process-wide allocator.
func TestSetAllocator(t *testing.T) {
	t.Cleanup(func() { errv.SetAllocator(nil) })

	if _, ok := errv.DefaultAllocator().(alloc.Go); !ok {
		t.Fatalf("DefaultAllocator() = %T, want alloc.Go", errv.DefaultAllocator())
	}

	a := alloc.NewChecked()
	errv.SetAllocator(a)
	if errv.DefaultAllocator() != alloc.Allocator(a) {
		t.Fatal("DefaultAllocator() should return the installed allocator")
	}

	v := errv.New("disk full")
	w := errv.Newf("disk %s", "full")
	if a.Allocations() != 2 {
		t.Errorf("Allocations() = %d, want 2", a.Allocations())
	}

	errv.SetAllocator(nil)
	if _, ok := errv.DefaultAllocator().(alloc.Go); !ok {
		t.Errorf("SetAllocator(nil) should restore alloc.Go, got %T", errv.DefaultAllocator())
	}

	// Values keep the allocator they were built with.
	c := v.Clone()
	if a.Allocations() != 3 {
		t.Errorf("Allocations() after Clone = %d, want 3", a.Allocations())
	}
	v.Release()
	w.Release()
	c.Release()
	a.AssertOutstanding(t, 0)
}

func TestWithAllocator_Nil(t *testing.T) {
	t.Parallel()

	v := errv.New("disk full", errv.WithAllocator(nil))
	defer v.Release()
	if v.String() != "disk full" {
		t.Errorf("String() = %q, want %q", v.String(), "disk full")
	}
}

func TestWithAllocator_OutOfMemory(t *testing.T) {
	t.Parallel()

	a := alloc.NewChecked(alloc.WithLimit(4))
	err := recoverError(t, func() {
		_ = errv.New("disk full", errv.WithAllocator(a))
	})
	if !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Errorf("panic = %v, want ErrOutOfMemory", err)
	}
	a.AssertOutstanding(t, 0)
}

// Not parallel: replaces the package logger.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	errv.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { errv.SetLogger(nil) })

	a := alloc.NewChecked()
	leaked := errv.New("leaked", errv.WithAllocator(a))
	if n := a.Leaks(); n != 1 {
		t.Errorf("Leaks() = %d, want 1", n)
	}
	if !strings.Contains(buf.String(), "leaked allocation") {
		t.Errorf("log output = %q, want a leak report", buf.String())
	}
	leaked.Release()
}
