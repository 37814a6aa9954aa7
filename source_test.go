package envguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSource_Lookup(t *testing.T) {
	s := MapSource{"SET": "v", "EMPTY": ""}

	v, ok := s.Lookup("SET")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	v, ok = s.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = s.Lookup("UNSET")
	assert.False(t, ok)
}

func TestEnvironSource(t *testing.T) {
	s := EnvironSource([]string{"A=1", "B=x=y", "C="})

	assert.Equal(t, MapSource{"A": "1", "B": "x=y", "C": ""}, s)
}

// TestSnapshot_IsStable verifies that a snapshot does not observe later
// environment changes.
func TestSnapshot_IsStable(t *testing.T) {
	t.Setenv("ENVGUARD_SNAPSHOT_TEST", "before")
	snap := Snapshot()

	t.Setenv("ENVGUARD_SNAPSHOT_TEST", "after")

	v, ok := snap.Lookup("ENVGUARD_SNAPSHOT_TEST")
	assert.True(t, ok)
	assert.Equal(t, "before", v)

	live, _ := OSEnv().Lookup("ENVGUARD_SNAPSHOT_TEST")
	assert.Equal(t, "after", live)
}

func TestSourceFunc(t *testing.T) {
	s := SourceFunc(func(key string) (string, bool) { return key + "!", true })

	v, ok := s.Lookup("K")
	assert.True(t, ok)
	assert.Equal(t, "K!", v)
}
