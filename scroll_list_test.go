package tview

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rowsPerSection = 5

// sectionAdapter lays out sections of one header followed by four rows.
type sectionAdapter struct {
	count int
	binds []AdapterPosition
}

func (a *sectionAdapter) ItemCount() int {
	return a.count
}

func (a *sectionAdapter) CreateStickyHeader() ScrollListItem {
	return NewTextItem("")
}

func (a *sectionAdapter) BindStickyHeader(item ScrollListItem, position AdapterPosition) {
	a.binds = append(a.binds, position)
	item.(*TextItem).SetText(fmt.Sprintf("Section %d", int(position)/rowsPerSection))
}

func (a *sectionAdapter) build(index, cursor int) ScrollListItem {
	if index < 0 || index >= a.count {
		return nil
	}
	if index%rowsPerSection == 0 {
		return NewTextItem(fmt.Sprintf("Section %d", index/rowsPerSection)).SetStickyHeader(true)
	}
	return NewTextItem(fmt.Sprintf("row %d", index))
}

func newSectionList(t *testing.T, count int) (*ScrollList, *sectionAdapter, *testScreen) {
	t.Helper()
	adapter := &sectionAdapter{count: count}
	list := NewScrollList().SetBuilder(adapter.build)
	list.SetStickyHeader(NewStickyHeader(list.Layout(0)), adapter)
	list.SetRect(0, 0, 20, 5)
	return list, adapter, newTestScreen(20, 5)
}

func TestScrollListPinsSectionHeader(t *testing.T) {
	list, adapter, screen := newSectionList(t, 20)

	list.Draw(screen)
	require.Equal(t, "Section 0", screen.row(0))
	assert.Equal(t, "row 1", screen.row(1))

	list.SetPendingScroll(2)
	list.Draw(screen)

	assert.Equal(t, 2, list.FirstVisibleIndex())
	assert.Equal(t, "Section 0", screen.row(0), "header stays pinned over row 2")
	assert.Equal(t, "row 3", screen.row(1))
	assert.Equal(t, "Section 1", screen.row(3))
	assert.Equal(t, []AdapterPosition{0}, adapter.binds)
	assert.Equal(t, []AdapterPosition{0, 5}, list.sticky.Positions())
}

func TestScrollListPushesPinnedHeaderUp(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	list.sticky.SetHeaderHeight(2)

	list.Draw(screen)
	require.Equal(t, "Section 0", screen.row(0))

	list.SetPendingScroll(4)
	list.Draw(screen)

	assert.Equal(t, 4, list.FirstVisibleIndex())
	assert.Equal(t, 1, list.sticky.Offset())
	assert.Equal(t, "", screen.row(0), "only the blank second line of the header is left")
	assert.Equal(t, "Section 1", screen.row(1))
}

func TestScrollListRebindsWhenHeaderReachesTop(t *testing.T) {
	list, adapter, screen := newSectionList(t, 20)

	list.Draw(screen)
	list.SetPendingScroll(5)
	list.Draw(screen)

	assert.Equal(t, 5, list.FirstVisibleIndex())
	assert.Equal(t, AdapterPosition(5), list.sticky.BoundPosition())
	assert.Equal(t, "Section 1", screen.row(0))
	assert.Equal(t, []AdapterPosition{0, 5}, adapter.binds)

	list.SetPendingScroll(-2)
	list.Draw(screen)

	assert.Equal(t, 3, list.FirstVisibleIndex())
	assert.Equal(t, AdapterPosition(0), list.sticky.BoundPosition())
	assert.Equal(t, "Section 0", screen.row(0))
}

func TestScrollListWithoutStickyHeader(t *testing.T) {
	adapter := &sectionAdapter{count: 20}
	list := NewScrollList().SetBuilder(adapter.build)
	list.SetRect(0, 0, 20, 5)
	screen := newTestScreen(20, 5)

	list.SetPendingScroll(2)
	list.Draw(screen)

	assert.Equal(t, "row 2", screen.row(0))
	assert.Empty(t, adapter.binds)
}

func TestScrollListStickyChildren(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	assert.Equal(t, 0, list.FirstVisibleIndex())
	assert.Equal(t, 0, list.StickyChildCount())

	list.SetPendingScroll(1)
	list.Draw(screen)

	require.Equal(t, 5, list.StickyChildCount())
	first := list.StickyChildAt(0)
	assert.Equal(t, 0, first.Top)
	assert.Equal(t, "row 1", first.Item.(*TextItem).GetText())
	assert.Equal(t, 4, list.StickyChildAt(4).Top)
}

func TestScrollListLayoutSkipsLeadingDecorations(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	list.SetPendingScroll(3)
	list.Draw(screen)

	assert.Equal(t, 3, list.Layout(0).FirstVisiblePosition())
	assert.Equal(t, 2, list.Layout(1).FirstVisiblePosition())
}

func TestScrollListAtEnd(t *testing.T) {
	list, _, screen := newSectionList(t, 8)

	list.Draw(screen)
	assert.False(t, list.AtEnd())

	list.ScrollToEnd()
	list.Draw(screen)
	assert.True(t, list.AtEnd())
	assert.Equal(t, 3, list.FirstVisibleIndex())
	assert.Equal(t, "row 7", screen.row(4))
}

func TestScrollListInputHandler(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	list.Draw(screen)

	var changed []int
	list.SetChangedFunc(func(index int) { changed = append(changed, index) })

	cmd := list.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 0, list.Cursor())

	cmd = list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 1, list.Cursor())

	cmd = list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 0, list.Cursor())

	assert.Nil(t, list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)))
	assert.Equal(t, []int{0, 1, 0}, changed)
}

func TestScrollListDisabledKeybind(t *testing.T) {
	list, _, _ := newSectionList(t, 20)
	keyMap := list.KeyMap()
	keyMap.Down.SetEnabled(false)
	list.SetKeyMap(keyMap)

	assert.Nil(t, list.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
	assert.Equal(t, -1, list.Cursor())
}

func TestScrollListPageDown(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	list.Draw(screen)

	cmd := list.InputHandler(tcell.NewEventKey(tcell.KeyPgDn, "", tcell.ModNone))
	require.Equal(t, RedrawCommand{}, cmd)
	list.Draw(screen)

	assert.Equal(t, 5, list.FirstVisibleIndex())
	assert.Equal(t, "Section 1", screen.row(0))
}

func TestScrollListClear(t *testing.T) {
	list, _, screen := newSectionList(t, 20)
	list.SetPendingScroll(3)
	list.Draw(screen)

	list.Clear()

	assert.Equal(t, 0, list.FirstVisibleIndex())
	assert.Equal(t, 0, list.StickyChildCount())
	assert.Equal(t, -1, list.Cursor())
}
