package service

const (
	// Documented input domain. Values outside it are extrapolated, not rejected.
	MinAnnualEnergyCost = 50_000.0
	MaxAnnualEnergyCost = 10_000_000.0
	MinFacilitySizeSqFt = 10_000.0
	MaxFacilitySizeSqFt = 1_000_000.0

	baseSavingsRateOffset   = 0.11
	savingsRatePerTier      = 0.01
	sizeFactorDivisor       = 100_000.0
	sizeFactorOffset        = 0.8
	minSizeFactor           = 0.9
	maxSizeFactor           = 1.3
	implementationCostPerSq = 2.0
	implementationPerTier   = 5_000.0
	implementationBaseCost  = 10_000.0
	sqFtPerSqMeter          = 10.764
	co2KgPerSqMeter         = 7.5
	kgToTons                = 0.001
	projectionYears         = 5
	monthsPerYear           = 12
)
