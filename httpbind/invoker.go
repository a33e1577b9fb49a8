package httpbind

import (
	"net/http"

	"github.com/jaz303/httperr"
)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Bind() creates an Invoker serving fn.
// The returned Invoker can be further customised with its With* functions;
// it implements http.Handler and can be mounted directly.
func Bind(fn HandlerFunc) *Invoker {
	return &Invoker{
		fn:    fn,
		catch: httperr.JSONCatchHandler(httperr.Options{}),
	}
}

// Invoker acts as a configuration point when binding a fallible handler to
// net/http. Errors returned by the handler, and panics raised by it, are passed
// to the catch handler.
type Invoker struct {
	fn    HandlerFunc
	catch httperr.CatchFunc
}

// WithLogger() installs httperr.JSONCatchHandler configured with l.
func (i *Invoker) WithLogger(l httperr.Logger) *Invoker {
	i.catch = httperr.JSONCatchHandler(httperr.Options{Logger: l})
	return i
}

// WithCatchHandler() replaces the catch handler.
//
// Since you will likely use the same catch handler for every route, it is
// common to wrap Bind() to attach your preferred handler automatically.
func (i *Invoker) WithCatchHandler(fn httperr.CatchFunc) *Invoker {
	i.catch = fn
	return i
}

// ServeHTTP invokes the bound handler.
func (i *Invoker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sw := wrapWriter(w)
	if e := invokeWithRecover(func() error { return i.fn(sw, r) }); e != nil {
		i.catch(e, sw, r)
	}
}

// Middleware returns a middleware that recovers panics raised by next and
// hands them to httperr.JSONCatchHandler(opts).
func Middleware(opts httperr.Options) func(http.Handler) http.Handler {
	catch := httperr.JSONCatchHandler(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)
			if e := invokeWithRecover(func() error {
				next.ServeHTTP(sw, r)
				return nil
			}); e != nil {
				catch(e, sw, r)
			}
		})
	}
}

// invokeWithRecover returns fn's error or, if fn panics, the recovered value.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func invokeWithRecover(fn func() error) (out any) {
	defer func() {
		if r := recover(); r != nil {
			if r == http.ErrAbortHandler {
				panic(r)
			}
			out = r
		}
	}()
	if err := fn(); err != nil {
		return err
	}
	return nil
}
