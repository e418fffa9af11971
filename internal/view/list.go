package view

import (
	"libadmin/internal/listctl"
)

// List is the render props for any list screen.
type List[T any, F comparable] struct {
	listctl.State[T, F]
	Pager   Pager  `json:"pager"`
	Showing string `json:"showing"`
	Empty   string `json:"empty,omitempty"`
}

// NewList wraps a controller snapshot with its pagination control and captions.
func NewList[T any, F comparable](s listctl.State[T, F], noun string) List[T, F] {
	last := s.Meta.LastPage
	l := List[T, F]{
		State:   s,
		Pager:   NewPager(s.Page, last),
		Showing: Showing(s.Meta, len(s.Items), noun),
	}
	if len(s.Items) == 0 && !s.Loading {
		l.Empty = EmptyMessage(noun, s.DebouncedSearch)
	}
	return l
}

// Rows converts the items of a list with fn, keeping everything else.
func Rows[T, R any, F comparable](l List[T, F], fn func(T) R) List[R, F] {
	rows := make([]R, 0, len(l.Items))
	for _, it := range l.Items {
		rows = append(rows, fn(it))
	}
	return List[R, F]{
		State: listctl.State[R, F]{
			Items:           rows,
			Loading:         l.Loading,
			Loaded:          l.Loaded,
			Page:            l.Page,
			PerPage:         l.PerPage,
			Meta:            l.Meta,
			SearchQuery:     l.SearchQuery,
			DebouncedSearch: l.DebouncedSearch,
			Filter:          l.Filter,
		},
		Pager:   l.Pager,
		Showing: l.Showing,
		Empty:   l.Empty,
	}
}
