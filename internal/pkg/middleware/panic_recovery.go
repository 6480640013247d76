package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and returns a generic 500 without leaking internal detail
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}

					zapLogger.Error("Panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("stack", string(debug.Stack())),
					)

					err = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
