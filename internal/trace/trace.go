// Package trace names the glog verbosity levels used across the core so
// call sites read as subsystem.Level(n) instead of bare glog.V(n).
package trace

import "github.com/golang/glog"

// Verbosity levels, from least to most chatty. Each subsystem reuses the
// same scale, and all helpers below read glog's single --v setting, so a
// level enabled for one subsystem is enabled for all of them.
const (
	LevelInfo  glog.Level = 1
	LevelDebug glog.Level = 2
	LevelTrace glog.Level = 3
)

// CPU reports whether CPU tracing at the given level is enabled, and if so
// returns the glog.Verbose value to log through: trace.CPU(LevelDebug).Infof(...).
func CPU(level glog.Level) glog.Verbose { return glog.V(level) }

// PPU reports whether PPU tracing at the given level is enabled.
func PPU(level glog.Level) glog.Verbose { return glog.V(level) }

// APU reports whether APU tracing at the given level is enabled.
func APU(level glog.Level) glog.Verbose { return glog.V(level) }

// Mapper reports whether mapper tracing at the given level is enabled.
func Mapper(level glog.Level) glog.Verbose { return glog.V(level) }
