package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEncode(t *testing.T) {
	t.Run("empty query encodes to empty string", func(t *testing.T) {
		q := &Query{}
		assert.Equal(t, "", q.Encode())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("empty string values are never emitted", func(t *testing.T) {
		q := &Query{}
		q.Add("name", "")
		q.Add("search", "usdc")
		assert.Equal(t, "?search=usdc", q.Encode())
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		q := &Query{}
		q.Add("zeta", "1")
		q.Add("alpha", "2")
		q.Add("mid", "3")
		assert.Equal(t, "?zeta=1&alpha=2&mid=3", q.Encode())
	})

	t.Run("list values join with comma", func(t *testing.T) {
		fromList := &Query{}
		fromList.AddList("status", []string{"LIVE", "SOON"})

		preJoined := &Query{}
		preJoined.Add("status", "LIVE,SOON")

		assert.Equal(t, preJoined.Encode(), fromList.Encode())
	})

	t.Run("empty list is treated as absent", func(t *testing.T) {
		q := &Query{}
		q.AddList("status", nil)
		q.AddList("tags", []string{})
		assert.Equal(t, "", q.Encode())
	})

	t.Run("zero and false are valid values", func(t *testing.T) {
		q := &Query{}
		q.AddNumber("minimumTvl", 0)
		q.AddBool("test", false)
		q.AddInt("page", 0)
		assert.Equal(t, "?minimumTvl=0&test=false&page=0", q.Encode())
	})

	t.Run("keys and values are percent-encoded", func(t *testing.T) {
		q := &Query{}
		q.Add("name", "a b&c")
		assert.Equal(t, "?name=a+b%26c", q.Encode())
	})
}

func TestFormatNumber(t *testing.T) {
	// Whole numbers must encode without a trailing fraction
	assert.Equal(t, "100", formatNumber(100))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "0.5", formatNumber(0.5))
	assert.Equal(t, "12.25", formatNumber(12.25))
}
