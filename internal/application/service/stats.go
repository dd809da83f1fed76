package service

import "time"

type LookupSource string

const (
	SourceCache   LookupSource = "cache"
	SourceNetwork LookupSource = "network"
)

type LookupStats struct {
	Source  LookupSource
	Replica string
	CacheMs float64
	NetMs   float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
