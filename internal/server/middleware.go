package server

import (
	"strconv"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	"github.com/classhive/classhive/pkg/schoolctx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthRequired resolves the caller's session from the identity provider and
// injects the caller's identity into the request context. Requests without a
// valid session never reach the guarded handler.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := s.provider.GetSession(c.Request.Context(), c.Request.Header)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		if session == nil || session.User == nil {
			AbortWithError(c, authdomain.Unauthorized("Login required"))
			return
		}

		ctx := schoolctx.WithUserID(c.Request.Context(), session.User.ID)
		if session.User.SchoolID != "" {
			ctx = schoolctx.WithSchoolID(ctx, session.User.SchoolID)
		}
		if session.User.Role != "" {
			ctx = schoolctx.WithRole(ctx, session.User.Role)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// rateLimit throttles a route per client IP. A nil limiter means rate
// limiting is not configured and every request passes through. Limiter
// backend failures fail open so Redis outages do not take down login.
func (s *Server) rateLimit(route string, rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + route + ":" + c.ClientIP()
		res, err := s.limiter.Allow(c.Request.Context(), key, rate, burst)
		if err != nil {
			s.log.Warn("rate limiter unavailable, allowing request",
				zap.String("route", route),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !res.Allowed {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Next()
	}
}
