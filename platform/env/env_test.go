package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("WP_NOTES_TEST_VALUE", "set")
	assert.Equal(t, "set", OrDefault(log, "WP_NOTES_TEST_VALUE", "def"))
	assert.Equal(t, "def", OrDefault(log, "WP_NOTES_TEST_MISSING", "def"))

	t.Setenv("WP_NOTES_TEST_EMPTY", "")
	assert.Equal(t, "def", OrDefault(log, "WP_NOTES_TEST_EMPTY", "def"))
}

func TestTypedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("WP_NOTES_TEST_DURATION", "3s")
	assert.Equal(t, 3*time.Second, DurationDefault(log, "WP_NOTES_TEST_DURATION", "1s"))
	assert.Equal(t, time.Second, DurationDefault(log, "WP_NOTES_TEST_MISSING", "1s"))

	assert.True(t, BoolDefault(log, "WP_NOTES_TEST_MISSING", "t"))
	assert.False(t, BoolDefault(log, "WP_NOTES_TEST_MISSING", "f"))

	t.Setenv("WP_NOTES_TEST_INT", "4")
	assert.Equal(t, 4, IntDefault(log, "WP_NOTES_TEST_INT", "1"))
	assert.Equal(t, 0, IntDefault(log, "WP_NOTES_TEST_MISSING", "nope"))

	t.Setenv("WP_NOTES_TEST_BAD_INT", "four")
	assert.Equal(t, 3, IntDefault(log, "WP_NOTES_TEST_BAD_INT", "3"))
}
