package usecase

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newOrderID() string {
	return uuid.New().String()
}

// newTrackingID returns an opaque identifier of the form
// TRK-<millisecond-timestamp>-<6 random uppercase alphanumerics>.
func newTrackingID(now time.Time) string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)
	for i := range suffix {
		suffix[i] = trackingAlphabet[int(suffix[i])%len(trackingAlphabet)]
	}
	return fmt.Sprintf("TRK-%d-%s", now.UnixMilli(), suffix)
}
