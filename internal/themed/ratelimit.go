package themed

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Limit is a token bucket rate: Rate tokens per second, at most Burst stored.
type Limit struct {
	Rate  float64
	Burst int
}

// DefaultLimits throttle the methods that write to the scope. Reads are
// unlimited.
var DefaultLimits = map[string]Limit{
	FullMethod(MethodUpdateColors):   {Rate: 20, Burst: 40},
	FullMethod(MethodSetDarkMode):    {Rate: 20, Burst: 40},
	FullMethod(MethodToggleDarkMode): {Rate: 20, Burst: 40},
}

type bucket struct {
	mu      sync.Mutex
	limit   Limit
	tokens  float64
	updated time.Time
	denied  int64
}

func newBucket(limit Limit, now time.Time) *bucket {
	return &bucket{
		limit:   limit,
		tokens:  float64(limit.Burst),
		updated: now,
	}
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.updated).Seconds() * b.limit.Rate
	if ceiling := float64(b.limit.Burst); b.tokens > ceiling {
		b.tokens = ceiling
	}
	b.updated = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	b.denied++
	return false
}

// RateLimiter holds one bucket per limited method.
type RateLimiter struct {
	now     func() time.Time
	buckets map[string]*bucket
}

// NewRateLimiter builds a limiter from per-method limits. A nil map uses
// DefaultLimits.
func NewRateLimiter(limits map[string]Limit) *RateLimiter {
	if limits == nil {
		limits = DefaultLimits
	}
	rl := &RateLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket, len(limits)),
	}
	start := rl.now()
	for method, limit := range limits {
		rl.buckets[method] = newBucket(limit, start)
	}
	return rl
}

// Allow consumes a token for method. Methods without a limit always pass.
func (rl *RateLimiter) Allow(method string) bool {
	b, ok := rl.buckets[method]
	if !ok {
		return true
	}
	return b.take(rl.now())
}

// Denied returns how many calls to method were rejected.
func (rl *RateLimiter) Denied(method string) int64 {
	b, ok := rl.buckets[method]
	if !ok {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.denied
}

// UnaryServerInterceptor rejects calls over the limit with ResourceExhausted.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow(info.FullMethod) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for method %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}
