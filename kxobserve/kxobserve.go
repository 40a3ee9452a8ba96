// Package kxobserve is a thin structured-logging helper for packages
// built on top of kxarena.Allocator; syncalloc is its only user (ospages
// does not log). It keeps log messages and field names in one place, and
// lets the core kxarena package itself never import zap at all.
package kxobserve

import "go.uber.org/zap"

// NopLogger returns a *zap.Logger that discards everything, used whenever
// a caller doesn't configure one explicitly.
func NopLogger() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns logger unchanged if non-nil, otherwise a no-op logger.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return NopLogger()
	}
	return logger
}

// ArenaReclaimed logs a gc/reclamation event at debug level.
func ArenaReclaimed(logger *zap.Logger, released int) {
	OrNop(logger).Debug("kxarena: arenas reclaimed", zap.Int("released", released))
}

// OutOfMemory logs an allocation failure at warn level.
func OutOfMemory(logger *zap.Logger, requestedBytes uintptr) {
	OrNop(logger).Warn("kxarena: out of memory", zap.Uint64("requested_bytes", uint64(requestedBytes)))
}
