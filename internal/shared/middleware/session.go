package middleware

import (
	"github.com/gin-gonic/gin"

	pkgdb "library-api/pkg/database"
)

// SessionObserver is notified when a request session is opened and released.
type SessionObserver interface {
	SessionOpened()
	SessionClosed()
}

// DBSession opens one database session before the handler runs and releases it
// on every exit path, panics included.
func DBSession(opener pkgdb.SessionOpener, observers ...SessionObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, release, err := opener.OpenSession(c.Request.Context())
		if err != nil {
			release()
			_ = c.Error(err)
			c.Abort()
			return
		}

		for _, o := range observers {
			o.SessionOpened()
		}
		defer func() {
			release()
			for _, o := range observers {
				o.SessionClosed()
			}
		}()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
