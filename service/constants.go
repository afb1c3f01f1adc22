package service

const (
	MaxLeaseTermYears = 100                 // 100 years
	MaxInterestRate   = 10                  // 1000% per year, as a fraction
	MaxAmount         = 1_000_000_000_000.0 // 1 trillion currency units
)

const (
	cacheKeyPrefix   = "lease:"
	ratePercentShift = -2
)
