package firmware

import "github.com/muurk/fwreport/internal/device"

// Status thresholds, in percent. Both are strict "greater than" limits.
const (
	CriticalThreshold = 90.0
	ElevatedThreshold = 80.0
)

// Status is the severity tier of a usage report.
type Status int

const (
	StatusNormal Status = iota
	StatusElevated
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusElevated:
		return "elevated"
	case StatusCritical:
		return "critical"
	default:
		return "normal"
	}
}

// UsageReport is a SizeBreakdown interpreted against a device's capacity.
type UsageReport struct {
	Sizes   SizeBreakdown
	Profile device.Profile

	FlashUsed uint64
	RAMUsed   uint64

	FlashPercent float64
	RAMPercent   float64
}

// NewUsageReport derives flash and RAM utilization.
func NewUsageReport(sizes SizeBreakdown, profile device.Profile) UsageReport {
	r := UsageReport{
		Sizes:     sizes,
		Profile:   profile,
		FlashUsed: sizes.FlashUsed(),
		RAMUsed:   sizes.RAMUsed(),
	}
	r.FlashPercent = percent(r.FlashUsed, profile.FlashBytes)
	r.RAMPercent = percent(r.RAMUsed, profile.RAMBytes)
	return r
}

// Status picks the severity tier from whichever region is fuller.
func (r UsageReport) Status() Status {
	peak := max(r.FlashPercent, r.RAMPercent)
	switch {
	case peak > CriticalThreshold:
		return StatusCritical
	case peak > ElevatedThreshold:
		return StatusElevated
	default:
		return StatusNormal
	}
}

func percent(used, capacity uint64) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity) * 100
}
