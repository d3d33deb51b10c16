package ratelimiter

import "time"

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(client string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
