package usecase

import (
	"context"
	"time"
)

// LiveLocationReport is a position streamed by a vendor over the realtime channel.
// Coordinates is kept as a raw slice so malformed payloads can be rejected explicitly.
type LiveLocationReport struct {
	VendorID    string     `json:"vendorId"`
	Coordinates []float64  `json:"coordinates"`
	Address     *string    `json:"address,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// LiveLocationUsecase applies streamed vendor positions and announces them.
type LiveLocationUsecase interface {
	// ReportLocation updates the index, applies the auto-activation rule and broadcasts the result.
	// Invalid reports and unknown vendors return an error without side effects.
	ReportLocation(ctx context.Context, report *LiveLocationReport) error
}
