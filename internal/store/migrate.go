package store

// versionField is stamped into every hydrated record so later releases know
// which migration steps still apply.
const versionField = "schemaVersion"

// Step rewrites a record from one schema version to the next.
type Step func(rec map[string]any) map[string]any

// Migrator holds the registered migration steps per entity kind. Step i
// migrates a version-i record to version i+1; the current version of a kind
// is the number of registered steps.
type Migrator struct {
	steps map[Kind][]Step
}

func NewMigrator() *Migrator {
	return &Migrator{steps: make(map[Kind][]Step)}
}

// Register appends migration steps for kind, in order.
func (m *Migrator) Register(kind Kind, steps ...Step) {
	m.steps[kind] = append(m.steps[kind], steps...)
}

// Version returns the current schema version of kind.
func (m *Migrator) Version(kind Kind) int {
	return len(m.steps[kind])
}

// Apply runs the outstanding migration steps for kind against rec and stamps
// the resulting version. A nil rec stays nil. Records claiming a newer version
// than the registry knows are left untouched apart from the stamp, preserving
// their extra fields.
func (m *Migrator) Apply(kind Kind, rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	from := recordVersion(rec)
	steps := m.steps[kind]
	for i := from; i < len(steps); i++ {
		rec = steps[i](rec)
	}
	if from > len(steps) {
		rec[versionField] = from
	} else {
		rec[versionField] = len(steps)
	}
	return rec
}

// HydrateRecord migrates the stored partial, merges it over defaults, and
// stamps the current schema version.
func (m *Migrator) HydrateRecord(kind Kind, defaults, stored map[string]any) map[string]any {
	merged := Hydrate(defaults, m.Apply(kind, stored))
	if v, ok := merged[versionField]; !ok || recordVersionOf(v) < m.Version(kind) {
		merged[versionField] = m.Version(kind)
	}
	return merged
}

func recordVersion(rec map[string]any) int {
	return recordVersionOf(rec[versionField])
}

func recordVersionOf(v any) int {
	switch value := v.(type) {
	case int:
		return value
	case float64:
		// JSON numbers decode as float64.
		return int(value)
	default:
		return 0
	}
}
