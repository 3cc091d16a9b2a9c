package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		wantN   int
		wantSet bool
	}{
		{raw: "", wantSet: false},
		{raw: "2", wantN: 2, wantSet: true},
		{raw: "0", wantN: 0, wantSet: true},
		{raw: "-1", wantSet: false},
		{raw: "abc", wantSet: false},
		{raw: "2.5", wantSet: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, set := ParseLimit(tt.raw).Value()
			assert.Equal(t, tt.wantSet, set)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Apply(items, LimitOf(2)))
	assert.Empty(t, Apply(items, LimitOf(0)))
	assert.Equal(t, items, Apply(items, LimitOf(10)))
	assert.Equal(t, items, Apply(items, NoLimit()))
	assert.Equal(t, items, Apply(items, LimitOf(-3)))
	assert.Empty(t, Apply([]int{}, LimitOf(1)))
}

func TestLimit_Empty(t *testing.T) {
	assert.True(t, LimitOf(0).Empty())
	assert.False(t, LimitOf(1).Empty())
	assert.False(t, NoLimit().Empty())
	_, set := NoLimit().Value()
	assert.False(t, set)
}
