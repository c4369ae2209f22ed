package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]int{"a": 1})
	b := maps.All(map[string]int{"b": 2})

	got := maps.Collect(Concat2(a, b))
	assert.Equal(map[string]int{"a": 1, "b": 2}, got)

	var keys []string
	for k := range Concat2(a, b) {
		keys = append(keys, k)
		break
	}
	assert.Equal([]string{"a"}, keys)
	assert.Empty(maps.Collect(Concat2[string, int]()))
}
