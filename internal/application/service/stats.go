package service

import "time"

const (
	opList   = "list"
	opSearch = "search"
)

func convertToMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
