// Package applog is a process-wide logger built with the Singleton pattern.
//
// Instance returns the one *Logger of the process. It is created lazily, on
// first access, exactly once, no matter how many goroutines race for it
// (sync.Once). Every later call returns the same pointer, which is never
// reassigned afterwards; the instance ID makes that visible.
//
// Init may configure the instance (level, encoding, output) before first
// use. Once Instance has been called, Init fails with ErrAlreadyInitialized.
//
// Probe is the concurrency demonstration: it starts a number of goroutines
// that each fetch Instance and report the ID they saw. SameInstance then
// confirms that all of them observed one logger.
//
// Structured output is delegated to go.uber.org/zap; this package only owns
// the lifecycle. It is not a logging framework.
package applog
