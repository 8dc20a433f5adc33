package gfx

import (
	"fmt"
	"strings"

	set "github.com/kroppt/Int32Set"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// GLError is an error flag reported by glGetError.
type GLError uint32

const (
	NoError                     GLError = glapi.NO_ERROR
	InvalidEnum                 GLError = glapi.INVALID_ENUM
	InvalidValue                GLError = glapi.INVALID_VALUE
	InvalidOperation            GLError = glapi.INVALID_OPERATION
	StackOverflow               GLError = glapi.STACK_OVERFLOW
	StackUnderflow              GLError = glapi.STACK_UNDERFLOW
	OutOfMemory                 GLError = glapi.OUT_OF_MEMORY
	InvalidFramebufferOperation GLError = glapi.INVALID_FRAMEBUFFER_OPERATION
)

func (e GLError) String() string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GLError(%#x)", uint32(e))
}

// Description explains what the driver rejected.
func (e GLError) Description() string {
	switch e {
	case NoError:
		return "no error has been recorded"
	case InvalidEnum:
		return "an unacceptable value is specified for an enumerated argument"
	case InvalidValue:
		return "a numeric argument is out of range"
	case InvalidOperation:
		return "the specified operation is not allowed in the current state"
	case StackOverflow:
		return "an operation would cause an internal stack to overflow"
	case StackUnderflow:
		return "an operation would cause an internal stack to underflow"
	case OutOfMemory:
		return "there is not enough memory left to execute the command"
	case InvalidFramebufferOperation:
		return "the framebuffer object is not complete"
	}
	return "unknown error code"
}

// ErrGL indicates that the driver recorded one or more errors.
const ErrGL log.ConstErr = "OpenGL error"

// APIError lists the distinct error flags found by a check, in the order they
// were first seen.
type APIError struct {
	Context string
	Codes   []GLError
}

func (e *APIError) Error() string {
	descs := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		descs[i] = fmt.Sprintf("%v (%v)", c, c.Description())
	}
	return fmt.Sprintf("%v after %v: %v", ErrGL, e.Context, strings.Join(descs, "; "))
}

func (e *APIError) Unwrap() error {
	return ErrGL
}

// maxDrain bounds the drain loop; a lost context can report errors forever.
const maxDrain = 64

// ErrorProbe reads and clears the context's error flags. Errors are global to
// the context and ordered by call, so a check must directly follow the calls
// it audits.
type ErrorProbe struct {
	fn       glapi.Functions
	reported []GLError
	fail     func(format string, v ...interface{})
}

func newErrorProbe(fn glapi.Functions) *ErrorProbe {
	return &ErrorProbe{fn: fn, fail: log.Fatalf}
}

// SetFailFunc replaces the function AssertNoErrors calls on failure, which
// is log.Fatalf by default.
func (p *ErrorProbe) SetFailFunc(fail func(format string, v ...interface{})) {
	p.fail = fail
}

// Report records an error detected by glsu itself, such as binding a
// destroyed object. It surfaces through the next Check like a driver error.
func (p *ErrorProbe) Report(code GLError) {
	p.reported = append(p.reported, code)
}

func (p *ErrorProbe) drain() []GLError {
	var codes []GLError
	seen := set.NewSet()
	add := func(c GLError) {
		if seen.Contains(int32(c)) {
			return
		}
		seen.Add(int32(c))
		codes = append(codes, c)
	}
	for _, c := range p.reported {
		add(c)
	}
	p.reported = nil
	for i := 0; i < maxDrain; i++ {
		c := GLError(p.fn.GetError())
		if c == NoError {
			break
		}
		add(c)
	}
	return codes
}

// Clear discards every pending error flag.
func (p *ErrorProbe) Clear() {
	p.drain()
}

// Check drains the error flags and returns an *APIError wrapping ErrGL if
// any were set.
func (p *ErrorProbe) Check(context string) error {
	codes := p.drain()
	if len(codes) == 0 {
		return nil
	}
	return &APIError{Context: context, Codes: codes}
}

// AssertNoErrors drains the error flags and fails fatally if any were set.
// An error here is a programming mistake in the preceding calls.
func (p *ErrorProbe) AssertNoErrors(context string) {
	if err := p.Check(context); err != nil {
		p.fail("%v", err)
	}
}
