package store

// Hydrate merges a stored partial record over a schema of default values and
// returns an always-complete record.
//
// Every key present in stored overrides the default; keys absent from stored
// fall back to defaults. The merge is shallow: a partially-specified nested
// object fully replaces the default nested object. Fields present in stored
// but absent from defaults are preserved, not pruned, so records written by
// older or newer releases survive a round-trip.
//
// Hydrate is idempotent: Hydrate(d, Hydrate(d, r)) == Hydrate(d, r).
func Hydrate(defaults, stored map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(stored))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range stored {
		merged[k] = v
	}
	return merged
}
