package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi/glapitest"
)

// newContext returns a context over a fresh software function table whose
// error assertions fail the test instead of exiting.
func newContext(t *testing.T) (*glapitest.Functions, *gfx.Context) {
	t.Helper()
	fn := glapitest.New()
	ctx := gfx.NewContext(fn)
	ctx.Probe().SetFailFunc(t.Fatalf)
	return fn, ctx
}
