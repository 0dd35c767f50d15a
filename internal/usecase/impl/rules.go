package impl

import "vendorradar/internal/domain/entity"

// LocationReportRule decides what a streamed position implies beyond the position itself.
type LocationReportRule interface {
	Name() string

	// ActivateOnReport reports whether the vendor should be flipped to available.
	ActivateOnReport(vendor *entity.Vendor) bool
}

// autoActivateOnLocationReport treats a vendor that streams its GPS position as live.
type autoActivateOnLocationReport struct {
	enabled bool
}

// NewAutoActivateRule returns the autoActivateOnLocationReport rule; a disabled rule never activates.
func NewAutoActivateRule(enabled bool) LocationReportRule {
	return autoActivateOnLocationReport{enabled: enabled}
}

func (r autoActivateOnLocationReport) Name() string {
	return "autoActivateOnLocationReport"
}

func (r autoActivateOnLocationReport) ActivateOnReport(vendor *entity.Vendor) bool {
	return r.enabled && vendor != nil && !vendor.IsAvailable
}
