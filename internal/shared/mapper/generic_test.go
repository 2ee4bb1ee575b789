package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		got := MapSlice([]int{}, strconv.Itoa)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("order is preserved", func(t *testing.T) {
		assert.Equal(t, []string{"3", "1", "2"}, MapSlice([]int{3, 1, 2}, strconv.Itoa))
	})
}
