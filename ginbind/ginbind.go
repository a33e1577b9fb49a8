// Package ginbind installs httperr's JSON error handling on a gin engine.
package ginbind

import (
	"github.com/gin-gonic/gin"

	"github.com/jaz303/httperr"
)

// Handler returns a middleware that, once the rest of the chain has run,
// renders the last error recorded with c.Error() as an httperr.Envelope.
// Earlier errors are left in c.Errors untouched.
func Handler(opts httperr.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || last.Err == nil {
			return
		}
		handle(c, opts, last.Err)
	}
}

// Recovery returns a middleware that recovers panics and renders the
// recovered value as an httperr.Envelope. gin's own panic logging is disabled;
// opts.Logger receives the report instead.
func Recovery(opts httperr.Options) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		handle(c, opts, rec)
	})
}

func handle(c *gin.Context, opts httperr.Options, e any) {
	herr := opts.Report(c.Request, e)
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(herr.Status, httperr.Envelope{Error: herr})
}
