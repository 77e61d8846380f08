package lint

import "sync"

// globalRegistry is the single global registry for validation rules.
// Rules are kept as an explicit ordered list, not a map: evaluation order is
// part of the contract (grammar-then-policy gates run top to bottom in
// registration order).
var globalRegistry = &Registry{}

// Registry stores registered validation rules in registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []RuleDef
}

// Register appends a rule to the global registry. Call this from init()
// functions in rule packages; evaluation follows registration order.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = append(globalRegistry.rules, rule)
}

// All returns the registered rules in evaluation order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]RuleDef, len(globalRegistry.rules))
	copy(out, globalRegistry.rules)
	return out
}

// ByID returns a rule by its ID.
func ByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	for _, rule := range globalRegistry.rules {
		if rule.ID == id {
			return rule, true
		}
	}
	return RuleDef{}, false
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = nil
}
