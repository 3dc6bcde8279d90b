package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/renval/gangboard/internal/domain/activity"
)

// EmptyCategory is the body shown for a category with no activities.
const EmptyCategory = "No activities in this category."

// Dates on the board are rendered in a fixed UTC+7 offset regardless of
// where the process runs.
var boardZone = time.FixedZone("UTC+7", 7*60*60)

// CategoryView is the rendered form of one category: everything the display
// layer needs to build the embed and its paging controls.
type CategoryView struct {
	Type       activity.Type
	Title      string
	Body       string
	Footer     string
	Page       int
	TotalPages int
	Total      int
}

// HasPaging reports whether the category needs paging controls.
func (v CategoryView) HasPaging() bool {
	return v.TotalPages > 1
}

// Render produces one view per category in the fixed category order. It only
// reads the pager (clamping aside), so rendering twice with unchanged inputs
// yields identical views.
func Render(activities []activity.Activity, pager *Pager) []CategoryView {
	views := make([]CategoryView, 0, len(activity.Types()))
	for _, t := range activity.Types() {
		views = append(views, renderCategory(t, activity.ByType(activities, t), pager))
	}
	return views
}

func renderCategory(t activity.Type, entries []activity.Activity, pager *Pager) CategoryView {
	total := len(entries)
	totalPages := TotalPages(total)
	page := pager.Current(t, total)

	view := CategoryView{
		Type:       t,
		Title:      fmt.Sprintf("%s Activities", t.Label),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}

	if total == 0 {
		view.Body = EmptyCategory
		return view
	}

	start := page * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, FormatRow(i+1, entries[i]))
	}
	view.Body = strings.Join(lines, "\n")

	if totalPages > 1 {
		view.Footer = fmt.Sprintf("Page %d/%d • %d activities", page+1, totalPages, total)
	}
	return view
}

// FormatRow renders a single board line. The index is the entry's absolute
// 1-based position in the full sorted category list, so page 2 starts
// numbering at 26.
func FormatRow(index int, a activity.Activity) string {
	desc := ""
	if a.Description != "" {
		desc = fmt.Sprintf(" [%s]", a.Description)
	}
	date := a.CreatedAt.In(boardZone).Format("02/01/2006")
	return fmt.Sprintf("%d. **%s**%s (%s)", index, a.GangName, desc, date)
}

// FormatDate renders a timestamp the way board rows do.
func FormatDate(ts time.Time) string {
	return ts.In(boardZone).Format("02/01/2006")
}
