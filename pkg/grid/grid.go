// Package grid lays text out on the fixed character grid of the desktop console.
package grid

// GetGridCoords converts a linear cell index into its column and row.
func GetGridCoords(index int, cols int) (x int, y int) {
	return index % cols, index / cols
}

// Wrap breaks every line into rows of at most cols runes. An empty line
// still occupies one row.
func Wrap(lines []string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var rows []string
	for _, line := range lines {
		r := []rune(line)
		if len(r) == 0 {
			rows = append(rows, "")
			continue
		}
		for len(r) > cols {
			rows = append(rows, string(r[:cols]))
			r = r[cols:]
		}
		rows = append(rows, string(r))
	}
	return rows
}

// Window returns the rows [start, end) visible in a viewport of height rows
// when scrolled back offset rows from the bottom. The returned offset is
// clamped to what total allows.
func Window(total, height, offset int) (start, end, clamped int) {
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	clamped = min(max(offset, 0), maxOffset)
	end = total - clamped
	start = max(end-height, 0)
	return start, end, clamped
}

// Fill copies rows into a cols*height cell buffer in row-major order. Cells
// past the end of a row stay zero.
func Fill(rows []string, cols, height int) []rune {
	cells := make([]rune, cols*height)
	for y, row := range rows {
		if y >= height {
			break
		}
		x := 0
		for _, ch := range row {
			if x >= cols {
				break
			}
			cells[y*cols+x] = ch
			x++
		}
	}
	return cells
}
