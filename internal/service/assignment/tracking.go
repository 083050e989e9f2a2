package assignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ecodeli-dispatch/internal/ports/assignmenttx"
)

const (
	trackingPrefix   = "ECO-"
	trackingAttempts = 5
)

// NewTrackingNumber returns a random tracking number: the prefix followed by
// 12 upper-case hex characters of a random UUID.
func NewTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingPrefix + strings.ToUpper(raw[:12])
}

// uniqueTrackingNumber draws tracking numbers until one is not taken. The
// unique index on deliveries still guards against a concurrent insert.
func uniqueTrackingNumber(ctx context.Context, tx assignmenttx.Repository, gen func() string) (string, error) {
	for i := 0; i < trackingAttempts; i++ {
		tn := gen()
		taken, err := tx.TrackingNumberExists(ctx, tn)
		if err != nil {
			return "", err
		}
		if !taken {
			return tn, nil
		}
	}
	return "", fmt.Errorf("no free tracking number after %d attempts", trackingAttempts)
}
