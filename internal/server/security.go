package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/metrics"
)

// AuthMiddleware requires X-API-Key on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				metrics.SecurityBlocks.WithLabelValues(metrics.ReasonUnauthorized).Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// DetectorConfig tunes the suspicious activity window and thresholds
type DetectorConfig struct {
	Window           time.Duration
	FailedAuthAlert  int
	MaxRequestsPerIP int
}

// DefaultDetectorConfig allows 1000 requests per IP every five minutes
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Window:           DefaultDetectorWindow,
		FailedAuthAlert:  DefaultFailedAuthAlertAt,
		MaxRequestsPerIP: DefaultMaxRequestsPerIP,
	}
}

// SuspiciousActivityDetector counts failed logins and requests per IP over a fixed window
type SuspiciousActivityDetector struct {
	cfg DetectorConfig
	now func() time.Time

	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
}

// NewSuspiciousActivityDetector uses DefaultDetectorConfig
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return NewSuspiciousActivityDetectorWithConfig(DefaultDetectorConfig())
}

func NewSuspiciousActivityDetectorWithConfig(cfg DetectorConfig) *SuspiciousActivityDetector {
	d := &SuspiciousActivityDetector{cfg: cfg, now: time.Now}
	d.reset()
	return d
}

// RecordFailedAuth counts a failed authentication and alerts past the threshold
func (d *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.failedAuthByIP[ip]++

	if count := d.failedAuthByIP[ip]; count >= d.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest counts a request and reports whether the IP is still under its limit
func (d *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.requestCountByIP[ip]++

	count := d.requestCountByIP[ip]
	if count <= d.cfg.MaxRequestsPerIP {
		return true
	}
	if count%highRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// rollWindow starts a new window once the current one has expired. Caller holds mu.
func (d *SuspiciousActivityDetector) rollWindow() {
	if d.now().Sub(d.windowStart) > d.cfg.Window {
		d.reset()
	}
}

func (d *SuspiciousActivityDetector) reset() {
	d.failedAuthByIP = make(map[string]int)
	d.requestCountByIP = make(map[string]int)
	d.windowStart = d.now()
}

// RateLimitMiddleware rejects clients over the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				metrics.SecurityBlocks.WithLabelValues(metrics.ReasonRateLimited).Inc()
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy, and then its last hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// writeError matches the API's JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
