package tview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStickyOverlayLayoutHeight(t *testing.T) {
	o := newStickyOverlay(NewTextItem("one two three"))

	assert.Equal(t, 2, o.layout(8, 0), "natural height at width 8")
	assert.Equal(t, 2, o.layout(20, 0), "no layout pending keeps the measured rect")

	o.requestLayout()
	assert.Equal(t, 4, o.layout(20, 4))
	_, _, width, height := o.item.GetRect()
	assert.Equal(t, 20, width)
	assert.Equal(t, 4, height)
}
