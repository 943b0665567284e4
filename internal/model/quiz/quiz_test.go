package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemCorrectAndValid(t *testing.T) {
	item := Item{Question: "q", Options: []string{"a", "b", "c"}, Answer: 2}
	assert.True(t, item.Valid())
	assert.Equal(t, "c", item.Correct())
	assert.True(t, item.HasOption(0))
	assert.False(t, item.HasOption(3))
	assert.False(t, item.HasOption(-1))

	item.Answer = 3
	assert.False(t, item.Valid())
	assert.Empty(t, item.Correct())

	assert.False(t, Item{Question: " ", Options: []string{"a", "b"}}.Valid())
	assert.False(t, Item{Question: "q", Options: []string{"a"}}.Valid())
}
