package hfp

import "time"

// Config holds the per-machine timing parameters spec §6 calls out as
// "mutable static defaults" — hoisted here into configuration values
// set once at machine construction rather than package-level mutable
// statics, per the decision recorded in DESIGN.md for spec §9.
type Config struct {
	ConnectTimeout    time.Duration
	DialingOutTimeout time.Duration
	StartVrTimeout    time.Duration
	ClccRspTimeout    time.Duration
}

// DefaultConfig returns the timing defaults the original stack hard
// codes, expressed as a Config value instead of package constants.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:    30 * time.Second,
		DialingOutTimeout: 15 * time.Second,
		StartVrTimeout:    5 * time.Second,
		ClccRspTimeout:    5 * time.Second,
	}
}
