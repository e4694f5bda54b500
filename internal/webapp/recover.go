package webapp

import "runtime"

// DefaultStackSize caps captured stack traces.
const DefaultStackSize = 4096

type recoverSettings struct {
	stackSize    int
	withoutStack bool
}

// RecoverOption tunes the Recover middleware.
type RecoverOption func(*recoverSettings)

// WithRecoverStackSize changes how many bytes of stack are captured.
func WithRecoverStackSize(size int) RecoverOption {
	return func(s *recoverSettings) {
		s.stackSize = size
	}
}

// WithRecoverDisablePrintStack leaves stack traces out of both the log
// entry and the PanicError.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(s *recoverSettings) {
		s.withoutStack = true
	}
}

// Recover converts a handler panic into a PanicError for the error
// handler. The panic and its stack are logged at error level before the
// error propagates.
func Recover(opts ...RecoverOption) Middleware {
	s := recoverSettings{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&s)
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				if s.withoutStack {
					c.LogError("panic recovered", "panic", r)
					err = &PanicError{Value: r}
					return
				}

				stack := make([]byte, s.stackSize)
				stack = stack[:runtime.Stack(stack, false)]
				c.LogError("panic recovered", "panic", r, "stack", string(stack))
				err = &PanicError{Value: r, Stack: stack}
			}()

			return next(c)
		}
	}
}
