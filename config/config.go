// Package config loads the hfpagd daemon's configuration from command
// line flags and environment variable overrides, the way
// services/signaling/config does for the call-control daemon this
// repo is descended from.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/sebas/hfpagd/internal/hfp"
)

// Config holds the hfpagd daemon configuration.
type Config struct {
	// HTTP debug surface.
	DebugAddr string
	LogLevel  string

	// Per-machine timers (spec §6), overridable for tests and for
	// tuning against slow or noisy native stacks.
	Timers hfp.Config
}

// Load parses flags and applies environment variable overrides.
func Load() *Config {
	cfg := &Config{
		Timers: hfp.DefaultConfig(),
	}

	flag.StringVar(&cfg.DebugAddr, "debug-addr", "127.0.0.1:8686", "address the /debug HTTP endpoint listens on")
	flag.StringVar(&cfg.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")

	var connectTimeout, dialingOutTimeout, startVrTimeout, clccRspTimeout time.Duration
	flag.DurationVar(&connectTimeout, "connect-timeout", cfg.Timers.ConnectTimeout, "signalling connect timeout")
	flag.DurationVar(&dialingOutTimeout, "dialing-out-timeout", cfg.Timers.DialingOutTimeout, "dial-out response timeout")
	flag.DurationVar(&startVrTimeout, "start-vr-timeout", cfg.Timers.StartVrTimeout, "voice recognition start timeout")
	flag.DurationVar(&clccRspTimeout, "clcc-rsp-timeout", cfg.Timers.ClccRspTimeout, "+CLCC response timeout")

	flag.Parse()

	cfg.Timers.ConnectTimeout = connectTimeout
	cfg.Timers.DialingOutTimeout = dialingOutTimeout
	cfg.Timers.StartVrTimeout = startVrTimeout
	cfg.Timers.ClccRspTimeout = clccRspTimeout

	if addr := os.Getenv("HFPAGD_DEBUG_ADDR"); addr != "" {
		cfg.DebugAddr = addr
	}
	if lvl := os.Getenv("HFPAGD_LOGLEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if v := os.Getenv("HFPAGD_CONNECT_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timers.ConnectTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("HFPAGD_DIALING_OUT_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timers.DialingOutTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("HFPAGD_START_VR_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timers.StartVrTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("HFPAGD_CLCC_RSP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timers.ClccRspTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}
