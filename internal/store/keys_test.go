package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey_GlobalKinds(t *testing.T) {
	assert.Equal(t, "session", BuildKey(KindSession, ""))
	assert.Equal(t, "settings", BuildKey(KindSettings, ""))
	assert.Equal(t, "admin_report_cards", BuildKey(KindReportCards, ""))
}

func TestBuildKey_OwnerScopedKinds(t *testing.T) {
	assert.Equal(t, "profile_t1", BuildKey(KindProfile, "t1"))
	assert.Equal(t, "calendar_events_t1", BuildKey(KindCalendarEvents, "t1"))
}

func TestBuildKey_Deterministic(t *testing.T) {
	assert.Equal(t, BuildKey(KindProfile, "u42"), BuildKey(KindProfile, "u42"))
}

func TestBuildKey_DistinctOwnersNeverCollide(t *testing.T) {
	owners := []string{"a1", "a2", "b1", "admin", "t-7"}
	seen := make(map[string]string)
	for _, kind := range []Kind{KindProfile, KindCalendarEvents} {
		for _, owner := range owners {
			key := BuildKey(kind, owner)
			prev, dup := seen[key]
			assert.False(t, dup, "key %q already produced for %q", key, prev)
			seen[key] = string(kind) + "/" + owner
		}
	}
}
