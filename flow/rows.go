// Package flow wraps variable-width items into rows that fit a width budget.
package flow

import "fyne.io/fyne/v2"

// unmeasuredHeight is the height assumed for items with no recorded size.
const unmeasuredHeight = 1

// ComputeRows partitions items into rows, greedy first-fit, left to right.
//
// Every placed item consumes its width plus spacing from the row budget, the
// last item of a row included. Items missing from sizes are treated as
// availableWidth wide, so they always end up alone on a row. A single item
// wider than availableWidth still gets a row of its own.
//
// Empty input yields one empty row. Negative widths are clamped to zero.
func ComputeRows[K comparable](availableWidth float32, items []K, sizes map[K]fyne.Size, spacing float32) [][]K {
	if availableWidth < 0 {
		availableWidth = 0
	}
	if spacing < 0 {
		spacing = 0
	}

	rows := [][]K{{}}
	current := 0
	remaining := availableWidth

	for _, item := range items {
		size, ok := sizes[item]
		if !ok {
			size = fyne.NewSize(availableWidth, unmeasuredHeight)
		}

		if remaining-(size.Width+spacing) >= 0 {
			rows[current] = append(rows[current], item)
		} else {
			rows = append(rows, []K{item})
			current++
			remaining = availableWidth
		}

		remaining -= size.Width + spacing
	}

	// An oversized first item opens a new row and leaves the initial one
	// empty; only the no-items case keeps an empty row.
	if len(items) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	return rows
}
