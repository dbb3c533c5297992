// Package catalog provides the sectioned demo data shown by stickydemo. It
// feeds a ScrollList as its builder and its sticky header as the adapter.
package catalog

import (
	"fmt"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview"
)

// Kind classifies a row of the flattened catalog.
type Kind int

const (
	KindBanner Kind = iota
	KindHeader
	KindItem
	KindFooter
)

func (k Kind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	case KindHeader:
		return "header"
	case KindItem:
		return "item"
	case KindFooter:
		return "footer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Section is a titled group of items.
type Section struct {
	Title string
	Items []string
}

// Row is one entry of the flattened catalog. Section and Item are -1 where
// they do not apply.
type Row struct {
	Kind    Kind
	Section int
	Item    int
}

// Catalog flattens sections into list rows: leading banners, then every
// section as its header followed by its items, then trailing footers.
type Catalog struct {
	sections []Section
	leading  int
	trailing int
	rows     []Row
}

// New returns a catalog of sections framed by leading banner rows and
// trailing footer rows.
func New(sections []Section, leading, trailing int) *Catalog {
	c := &Catalog{
		sections: sections,
		leading:  max(leading, 0),
		trailing: max(trailing, 0),
	}
	for range c.leading {
		c.rows = append(c.rows, Row{Kind: KindBanner, Section: -1, Item: -1})
	}
	for s, section := range sections {
		c.rows = append(c.rows, Row{Kind: KindHeader, Section: s, Item: -1})
		for i := range section.Items {
			c.rows = append(c.rows, Row{Kind: KindItem, Section: s, Item: i})
		}
	}
	for range c.trailing {
		c.rows = append(c.rows, Row{Kind: KindFooter, Section: -1, Item: -1})
	}
	return c
}

// Generate builds count sections of items rows each.
func Generate(count, items int) []Section {
	sections := make([]Section, count)
	for s := range sections {
		sections[s].Title = fmt.Sprintf("Section %02d", s+1)
		sections[s].Items = make([]string, items)
		for i := range sections[s].Items {
			sections[s].Items[i] = fmt.Sprintf("Item %d.%d", s+1, i+1)
		}
	}
	return sections
}

// Leading returns the number of banner rows.
func (c *Catalog) Leading() int {
	return c.leading
}

// Trailing returns the number of footer rows.
func (c *Catalog) Trailing() int {
	return c.trailing
}

// Len returns the number of list rows, decorations included.
func (c *Catalog) Len() int {
	return len(c.rows)
}

// Row returns the row at list index.
func (c *Catalog) Row(index int) (Row, bool) {
	if index < 0 || index >= len(c.rows) {
		return Row{}, false
	}
	return c.rows[index], true
}

// SectionAt returns the section a list index belongs to, or -1 for
// decorations.
func (c *Catalog) SectionAt(index int) int {
	row, ok := c.Row(index)
	if !ok {
		return -1
	}
	return row.Section
}

// Build implements tview.ScrollListBuilder.
func (c *Catalog) Build(index, cursor int) tview.ScrollListItem {
	row, ok := c.Row(index)
	if !ok {
		return nil
	}

	switch row.Kind {
	case KindBanner:
		item := tview.NewTextItem("Pull to refresh").
			SetTextAlignment(tview.AlignmentCenter).
			SetTextStyle(tcell.StyleDefault.Foreground(tview.Styles.TertiaryTextColor))
		return item
	case KindFooter:
		item := tview.NewTextItem(fmt.Sprintf("%d sections", len(c.sections))).
			SetTextAlignment(tview.AlignmentCenter).
			SetTextStyle(tcell.StyleDefault.Foreground(tview.Styles.TertiaryTextColor))
		return item
	case KindHeader:
		item := newHeaderItem()
		c.fillHeader(item, row.Section)
		return item
	}

	item := tview.NewTextItem("  " + c.sections[row.Section].Items[row.Item])
	if index == cursor {
		item.SetTextStyle(tcell.StyleDefault.Foreground(tview.Styles.InverseTextColor))
		item.SetBackgroundColor(tview.Styles.PrimaryTextColor)
	}
	return item
}

// ItemCount implements tview.StickyAdapter. Decorations are not counted.
func (c *Catalog) ItemCount() int {
	return len(c.rows) - c.leading - c.trailing
}

// CreateStickyHeader implements tview.StickyAdapter.
func (c *Catalog) CreateStickyHeader() tview.ScrollListItem {
	return newHeaderItem()
}

// BindStickyHeader implements tview.StickyAdapter. Positions are list
// indices.
func (c *Catalog) BindStickyHeader(item tview.ScrollListItem, position tview.AdapterPosition) {
	header, ok := item.(*tview.TextItem)
	if !ok {
		return
	}
	c.fillHeader(header, c.SectionAt(int(position)))
}

func (c *Catalog) fillHeader(item *tview.TextItem, section int) {
	if section < 0 || section >= len(c.sections) {
		item.SetText("")
		return
	}
	s := c.sections[section]
	item.SetText(fmt.Sprintf("%s (%d)", s.Title, len(s.Items)))
}

func newHeaderItem() *tview.TextItem {
	item := tview.NewTextItem("").
		SetStickyHeader(true).
		SetTextStyle(tcell.StyleDefault.Foreground(tview.Styles.StickyHeaderTextColor).Bold(true))
	item.SetBackgroundColor(tview.Styles.StickyHeaderBackgroundColor)
	return item
}

var _ tview.StickyAdapter = (*Catalog)(nil)
