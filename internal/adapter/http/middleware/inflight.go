package middleware

import (
	"net/http"
	"sync"

	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

var errRequestInFlight = pkg.NewDomainErrorSimple("REQUEST_IN_FLIGHT", "A request like this one is still being processed", http.StatusConflict)

// InFlightGuard rejects a request while another one from the same caller on
// the same route is still running. Public callers are keyed by client IP.
type InFlightGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{running: make(map[string]struct{})}
}

func (g *InFlightGuard) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := OwnerID(c)
		if caller == "" {
			caller = "ip:" + c.ClientIP()
		}
		key := caller + " " + c.Request.Method + " " + c.FullPath()

		if !g.acquire(key) {
			c.AbortWithStatusJSON(errRequestInFlight.HTTPStatus, errRequestInFlight.ToHTTPError())
			return
		}
		defer g.release(key)
		c.Next()
	}
}

func (g *InFlightGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return false
	}
	g.running[key] = struct{}{}
	return true
}

func (g *InFlightGuard) release(key string) {
	g.mu.Lock()
	delete(g.running, key)
	g.mu.Unlock()
}
