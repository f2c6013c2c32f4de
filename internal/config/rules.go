package config

// Wager and payout.
const (
	WagerAmount      = 10
	PayoutMultiplier = 1 // Payout = score * multiplier
)

// Points awarded per contact.
const (
	ObstaclePoints = 5
	RewardPoints   = 50
	HazardPoints   = -50
)

// Round timing and field layout.
const (
	RoundDuration     = 10.0 // Seconds from launch to settlement
	FieldObjectCount  = 35
	PlacementAttempts = 100
	CaptureRadius     = 100.0 // Aim gestures must start this close to the launcher
	PowerDivisor      = 10.0
	MaxPower          = 15.0
	MinLaunchPower    = 1.0 // Power must exceed this to launch
	AimPreviewScale   = 2.0
	DefaultTickRate   = 60
)

// Player defaults for a fresh or unreadable save.
const (
	StartingCoins     = 100
	StartingHighScore = 0
)
