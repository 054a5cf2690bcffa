package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"golang.org/x/time/rate"
)

// DefaultRateLimitIdleTTL is how long a client's bucket is kept after its last request.
const DefaultRateLimitIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	trusted []*net.IPNet
	now     func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// RateLimitOpt configures RateLimitMiddleware.
type RateLimitOpt func(*rateLimiter)

// WithTrustedProxies lets the limiter read X-Forwarded-For, but only when the
// connection comes from one of the given networks.
func WithTrustedProxies(nets []*net.IPNet) RateLimitOpt {
	return func(l *rateLimiter) {
		l.trusted = nets
	}
}

// RateLimitMiddleware limits requests per client IP with a token bucket of
// rps tokens per second and the given burst. It guards the credential endpoints.
// The client is the socket peer unless that peer is a trusted proxy.
func RateLimitMiddleware(rps float64, burst int, opts ...RateLimitOpt) func(http.Handler) http.Handler {
	l := newRateLimiter(rps, burst, opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.clientIP(r)
			if !l.allow(ip) {
				logger.Log.Warnw("rate limit exceeded", "ip", ip, "uri", r.RequestURI)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newRateLimiter(rps float64, burst int, opts ...RateLimitOpt) *rateLimiter {
	l := &rateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  DefaultRateLimitIdleTTL,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
	for _, opt := range opts {
		opt(l)
	}
	// A bucket may only be dropped once it would have refilled completely.
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); l.idleTTL < refill {
			l.idleTTL = refill
		}
	}
	return l
}

func (l *rateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idleTTL {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.idleTTL {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// clientIP walks X-Forwarded-For from the right while the hops are trusted
// proxies and returns the first untrusted address.
func (l *rateLimiter) clientIP(r *http.Request) string {
	ip := remoteHost(r)
	if !l.isTrusted(ip) {
		return ip
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if net.ParseIP(hop) == nil {
			break
		}
		ip = hop
		if !l.isTrusted(hop) {
			break
		}
	}
	return ip
}

func (l *rateLimiter) isTrusted(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, n := range l.trusted {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ParseTrustedProxies parses a comma separated list of CIDRs or single IPs.
func ParseTrustedProxies(s string) ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "/") {
			ip := net.ParseIP(part)
			if ip == nil {
				return nil, fmt.Errorf("invalid proxy address %q", part)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip, bits = ip.To4(), 8*net.IPv4len
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(part)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy network %q: %w", part, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}
