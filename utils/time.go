package utils

import "time"

// ToBRT converts UTC time to Brasília time for user-facing messages
func ToBRT(t time.Time) time.Time {
	brt, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return t // Fallback to UTC if the zone is not available
	}
	return t.In(brt)
}
