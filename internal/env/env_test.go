package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("RUCHI_STR", "value")
	t.Setenv("RUCHI_BLANK", "  ")
	t.Setenv("RUCHI_INT", "42")
	t.Setenv("RUCHI_BAD_INT", "forty")
	t.Setenv("RUCHI_BOOL", "true")
	t.Setenv("RUCHI_DUR", "3s")
	t.Setenv("RUCHI_LIST", "a@x.com, ,b@x.com")

	assert.Equal(t, "value", GetString("RUCHI_STR", "d"))
	assert.Equal(t, "d", GetString("RUCHI_BLANK", "d"))
	assert.Equal(t, "d", GetString("RUCHI_MISSING", "d"))
	assert.Equal(t, 42, GetInt("RUCHI_INT", 1))
	assert.Equal(t, 1, GetInt("RUCHI_BAD_INT", 1))
	assert.True(t, GetBool("RUCHI_BOOL", false))
	assert.False(t, GetBool("RUCHI_MISSING", false))
	assert.Equal(t, 3*time.Second, GetDuration("RUCHI_DUR", time.Second))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, GetList("RUCHI_LIST"))
	assert.Nil(t, GetList("RUCHI_MISSING"))
}
