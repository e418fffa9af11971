// Package view turns list state into the render props the browser draws.
package view

import (
	"fmt"

	"libadmin/internal/model"
)

// pageWindow is how many pages are shown either side of the current one.
const pageWindow = 2

// PageLink is one cell of the pagination control. Ellipsis cells carry no number.
type PageLink struct {
	Number   int  `json:"number,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Pager is the pagination control.
type Pager struct {
	Links   []PageLink `json:"links"`
	HasPrev bool       `json:"has_prev"`
	HasNext bool       `json:"has_next"`
}

// NewPager lays out first and last page, the window around the current
// page, and ellipses over any gaps.
func NewPager(current, last int) Pager {
	if last < 1 {
		last = 1
	}
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	p := Pager{HasPrev: current > 1, HasNext: current < last}
	lo, hi := max(1, current-pageWindow), min(last, current+pageWindow)

	if lo > 1 {
		p.Links = append(p.Links, PageLink{Number: 1, Current: current == 1})
		if lo > 2 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
		}
	}
	for n := lo; n <= hi; n++ {
		p.Links = append(p.Links, PageLink{Number: n, Current: n == current})
	}
	if hi < last {
		if hi < last-1 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
		}
		p.Links = append(p.Links, PageLink{Number: last})
	}
	return p
}

// Showing renders the range caption under a table, e.g.
// "Showing 11 to 20 of 42 books". Empty pages yield "".
func Showing(meta model.PaginationMeta, count int, noun string) string {
	if count == 0 || meta.Total == 0 {
		return ""
	}
	from := meta.From
	if from < 1 {
		from = 1
	}
	plural := noun
	if meta.Total != 1 {
		plural += "s"
	}
	return fmt.Sprintf("Showing %d to %d of %d %s", from, from+count-1, meta.Total, plural)
}

// EmptyMessage is shown in place of a table with no rows.
func EmptyMessage(noun, search string) string {
	if search != "" {
		return fmt.Sprintf("No %ss found matching %q", noun, search)
	}
	return fmt.Sprintf("No %ss found", noun)
}
