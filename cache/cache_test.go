package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemember_LoadsOnceWithinTTL(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	load := func() interface{} {
		calls++
		return "ok"
	}

	assert.Equal(t, "ok", c.Remember("sqlserver", load))
	assert.Equal(t, "ok", c.Remember("sqlserver", load))
	assert.Equal(t, 1, calls)
}

func TestRemember_ExpiredEntryReloads(t *testing.T) {
	c := New(20 * time.Millisecond)
	calls := 0
	load := func() interface{} {
		calls++
		return calls
	}

	assert.Equal(t, 1, c.Remember("sqlserver", load))
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 2, c.Remember("sqlserver", load))
}

func TestNew_ZeroTTLDisablesCaching(t *testing.T) {
	c := New(0)
	c.SetDefault("k", "v")
	time.Sleep(time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}
