package billing

import (
	"fmt"
	"time"

	"github.com/plantrent/backend/internal/domain/shared"
)

// Billing periods do not follow calendar months: the period labeled
// (year, month) opens on the boundary day of the previous month and closes
// on the day before the boundary day of the labeled month. The boundary day
// is capped at 28 so the closing day exists in every month.
const (
	MinBoundaryDay = 1
	MaxBoundaryDay = 28
)

// Period is the billing window for a (year, month) label. Start and End are
// both inclusive dates at midnight UTC.
type Period struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ComputePeriod derives the billing window for the given statement label.
// For boundary day D, the window is [D of month-1, D-1 of month]. Month 1
// wraps to December of the previous year.
func ComputePeriod(year, month, boundaryDay int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Month must be between 1 and 12, got %d", month))
	}
	if year < 1 {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Year must be positive, got %d", year))
	}
	if boundaryDay < MinBoundaryDay || boundaryDay > MaxBoundaryDay {
		return Period{}, shared.NewDomainError("INVALID_BOUNDARY_DAY", fmt.Sprintf("Cycle boundary day must be between %d and %d, got %d", MinBoundaryDay, MaxBoundaryDay, boundaryDay))
	}

	startYear, startMonth := year, month-1
	if startMonth < 1 {
		startMonth = 12
		startYear--
	}

	start := time.Date(startYear, time.Month(startMonth), boundaryDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), boundaryDay, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	return Period{
		Year:  year,
		Month: month,
		Start: start,
		End:   end,
	}, nil
}

// Contains reports whether the date falls inside the window. The time-of-day
// portion is ignored.
func (p Period) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// NextStart returns the first day of the following period
func (p Period) NextStart() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// Days returns the number of calendar days in the window
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// String renders the window as "2006-01-02..2006-01-02"
func (p Period) String() string {
	return p.Start.Format("2006-01-02") + ".." + p.End.Format("2006-01-02")
}

// NormalizeDate truncates a timestamp to midnight UTC
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
