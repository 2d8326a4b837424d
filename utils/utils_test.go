package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("ANKI_PUSH_TEST_KEY", "")
	assert.Equal(t, "fallback", EnvOrDefault("ANKI_PUSH_TEST_KEY", "fallback"))

	t.Setenv("ANKI_PUSH_TEST_KEY", "set")
	assert.Equal(t, "set", EnvOrDefault("ANKI_PUSH_TEST_KEY", "fallback"))
}
