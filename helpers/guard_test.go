package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "registry url is required", func() {
			StrPanic("", "registry url is required")
		})
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		got := StrPanic("http://gateway:8091", "registry url is required")
		require.Equal(t, "http://gateway:8091", got)
	})
}

func TestNilPanic(t *testing.T) {
	t.Run("nil_interface_panics", func(t *testing.T) {
		var v interface{} = nil
		assert.PanicsWithValue(t, "interface is required", func() {
			NilPanic(v, "interface is required")
		})
	})
	t.Run("nil_func_panics", func(t *testing.T) {
		var f func() time.Time
		assert.PanicsWithValue(t, "func is required", func() {
			NilPanic(f, "func is required")
		})
	})
	t.Run("nil_map_panics", func(t *testing.T) {
		var m map[string]int = nil
		assert.PanicsWithValue(t, "map is required", func() {
			NilPanic(m, "map is required")
		})
	})
	t.Run("nil_pointer_panics", func(t *testing.T) {
		var p *int = nil
		assert.PanicsWithValue(t, "pointer is required", func() {
			NilPanic(p, "pointer is required")
		})
	})
	t.Run("non_nil_returns_value", func(t *testing.T) {
		s := []byte("ok")
		got := NilPanic(s, "slice is required")
		require.Equal(t, []byte("ok"), got)
	})
}

func TestPositivePanic(t *testing.T) {
	t.Run("zero_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "interval must be positive", func() {
			PositivePanic(time.Duration(0), "interval must be positive")
		})
	})
	t.Run("negative_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "count must be positive", func() {
			PositivePanic(-1, "count must be positive")
		})
	})
	t.Run("positive_returns_value", func(t *testing.T) {
		got := PositivePanic(10*time.Second, "interval must be positive")
		assert.Equal(t, 10*time.Second, got)
	})
}
