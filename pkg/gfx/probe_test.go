package gfx_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
)

func TestAssertNoErrorsClean(t *testing.T) {
	_, ctx := newContext(t)
	failed := false
	ctx.Probe().SetFailFunc(func(string, ...interface{}) { failed = true })
	ctx.Probe().AssertNoErrors("nothing")
	if failed {
		t.Fatal("AssertNoErrors failed with no errors pending")
	}
}

func TestCheckDistinctCodes(t *testing.T) {
	fn, ctx := newContext(t)
	ctx.Probe().Report(gfx.InvalidOperation)
	fn.RaiseError(glapi.INVALID_VALUE)
	fn.RaiseError(glapi.INVALID_OPERATION)
	fn.RaiseError(glapi.OUT_OF_MEMORY)

	err := ctx.Probe().Check("draw")
	var apiErr *gfx.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	expected := []gfx.GLError{gfx.InvalidOperation, gfx.InvalidValue, gfx.OutOfMemory}
	if !reflect.DeepEqual(expected, apiErr.Codes) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, apiErr.Codes)
	}
	for _, want := range []string{"draw", "GL_INVALID_VALUE", gfx.OutOfMemory.Description()} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
	if err := ctx.Probe().Check("again"); err != nil {
		t.Fatalf("Check did not drain: %v", err)
	}
}

func TestClear(t *testing.T) {
	fn, ctx := newContext(t)
	fn.RaiseError(glapi.INVALID_ENUM)
	ctx.Probe().Report(gfx.InvalidValue)
	ctx.Probe().Clear()
	if len(fn.PendingErrors()) != 0 {
		t.Fatalf("driver errors left: %v", fn.PendingErrors())
	}
	ctx.Probe().AssertNoErrors("after clear")
}

func TestNewContextClearsErrors(t *testing.T) {
	fn, _ := newContext(t)
	fn.RaiseError(glapi.INVALID_ENUM)
	ctx := gfx.NewContext(fn)
	if err := ctx.Probe().Check("new context"); err != nil {
		t.Fatalf("expected leftover errors to be discarded, got %v", err)
	}
}

// lostContext reports the same error forever, as some drivers do after a
// context loss.
type lostContext struct {
	glapi.Functions
}

func (lostContext) GetError() uint32 { return glapi.OUT_OF_MEMORY }

func TestCheckBoundedDrain(t *testing.T) {
	fn, _ := newContext(t)
	ctx := gfx.NewContext(lostContext{fn})
	err := ctx.Probe().Check("lost")
	var apiErr *gfx.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Codes) != 1 {
		t.Fatalf("expected one distinct code, got %v", err)
	}
}

func TestGLErrorStrings(t *testing.T) {
	codes := []gfx.GLError{
		gfx.NoError, gfx.InvalidEnum, gfx.InvalidValue, gfx.InvalidOperation,
		gfx.InvalidFramebufferOperation, gfx.OutOfMemory, gfx.StackOverflow, gfx.StackUnderflow,
	}
	seen := make(map[string]bool)
	for _, c := range codes {
		s := c.String()
		if !strings.HasPrefix(s, "GL_") || seen[s] {
			t.Fatalf("bad or duplicate name %q", s)
		}
		seen[s] = true
		if c.Description() == "unknown error code" {
			t.Fatalf("%v has no description", c)
		}
	}
	if gfx.GLError(0x1234).Description() != "unknown error code" {
		t.Fatal("unexpected description for an unknown code")
	}
}
