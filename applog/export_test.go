package applog

import "sync"

// ResetForTest drops the singleton so the next Instance call creates a new
// one. Only tests may call it; production code never resets the instance.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	instance = nil
	pending = DefaultConfig()
	created = false
}
