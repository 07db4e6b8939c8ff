package elc

import (
	"fmt"
	"strings"
)

// Diagram is a Tromp-style lambda diagram rendered onto a 2D character grid
// (adapted from the teacher's diagram.go; https://tromp.github.io/cl/diagrams.html).
// This is purely presentational: it never participates in reduction and
// operates on an already-built Term.
type Diagram struct {
	Grid   [][]rune
	Width  int
	Height int
}

// NewDiagram allocates a blank width x height grid.
func NewDiagram(width, height int) *Diagram {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	return &Diagram{Grid: grid, Width: width, Height: height}
}

// Set writes a character at (row, col), ignoring out-of-bounds positions.
func (d *Diagram) Set(row, col int, ch rune) {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		d.Grid[row][col] = ch
	}
}

// Get reads the character at (row, col), returning a space out-of-bounds.
func (d *Diagram) Get(row, col int) rune {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		return d.Grid[row][col]
	}
	return ' '
}

// ToUnicode renders the grid as plain text using box-drawing characters.
func (d *Diagram) ToUnicode() string {
	var sb strings.Builder
	for i, row := range d.Grid {
		for _, ch := range row {
			sb.WriteRune(ch)
		}
		if i < len(d.Grid)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ToSVG renders the grid as an SVG document of line segments.
func (d *Diagram) ToSVG() string {
	const cellWidth = 20
	const cellHeight = 20

	width := d.Width * cellWidth
	height := d.Height * cellHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height))
	sb.WriteString("\n")
	sb.WriteString(`<style>line{stroke:black;stroke-width:2;stroke-linecap:round;}text{font-family:monospace;font-size:14px;}</style>`)
	sb.WriteString("\n")

	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			ch := d.Grid[row][col]
			x := col*cellWidth + cellWidth/2
			y := row*cellHeight + cellHeight/2

			switch ch {
			case '─', '━':
				x1 := col * cellWidth
				x2 := (col + 1) * cellWidth
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y, x2, y))
				sb.WriteString("\n")
			case '│', '┃':
				y1 := row * cellHeight
				y2 := (row + 1) * cellHeight
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, y1, x, y2))
				sb.WriteString("\n")
			case '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼':
				drawCornerSVG(&sb, ch, x, y, cellWidth, cellHeight)
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func drawCornerSVG(sb *strings.Builder, ch rune, x, y, cellWidth, cellHeight int) {
	halfW := cellWidth / 2
	halfH := cellHeight / 2

	line := func(x1, y1, x2, y2 int) {
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y1, x2, y2))
		sb.WriteString("\n")
	}

	switch ch {
	case '┌':
		line(x, y, x+halfW, y)
		line(x, y, x, y+halfH)
	case '┐':
		line(x-halfW, y, x, y)
		line(x, y, x, y+halfH)
	case '└':
		line(x, y-halfH, x, y)
		line(x, y, x+halfW, y)
	case '┘':
		line(x, y-halfH, x, y)
		line(x-halfW, y, x, y)
	case '├':
		line(x, y-halfH, x, y+halfH)
		line(x, y, x+halfW, y)
	case '┤':
		line(x, y-halfH, x, y+halfH)
		line(x-halfW, y, x, y)
	case '┬':
		line(x-halfW, y, x+halfW, y)
		line(x, y, x, y+halfH)
	case '┴':
		line(x-halfW, y, x+halfW, y)
		line(x, y-halfH, x, y)
	case '┼':
		line(x-halfW, y, x+halfW, y)
		line(x, y-halfH, x, y+halfH)
	}
}

// diagramContext tracks column allocation during a single rendering pass.
// The teacher keys variable positions by name (term.Name); our terms carry
// no names, so this keys by the binder's VarID instead.
type diagramContext struct {
	varPositions map[VarID][]int
	currentCol   int
}

// ToDiagram renders t as a two-pass Tromp diagram: calculateDimensions sizes
// the grid, then drawTerm paints it.
func ToDiagram(t Term) *Diagram {
	width, height := calculateDimensions(t, 0)
	width += 2
	height += 2

	d := NewDiagram(width, height)
	ctx := &diagramContext{
		varPositions: make(map[VarID][]int),
		currentCol:   1,
	}
	drawTerm(d, t, ctx, 1)
	return d
}

func calculateDimensions(t Term, depth int) (width, height int) {
	switch n := t.(type) {
	case Variable:
		return 2, depth + 1
	case Abstraction:
		w, h := calculateDimensions(n.Body, depth+1)
		return w + 2, max(h, depth+2)
	case Application:
		w1, h1 := calculateDimensions(n.Fun, depth)
		w2, h2 := calculateDimensions(n.Arg, depth)
		return w1 + w2 + 2, max(h1, h2)
	}
	return 4, depth + 1
}

func drawTerm(d *Diagram, t Term, ctx *diagramContext, row int) int {
	switch n := t.(type) {
	case Variable:
		col := ctx.currentCol
		ctx.currentCol += 2

		for r := row; r < d.Height-1; r++ {
			d.Set(r, col, '│')
		}
		ctx.varPositions[n.Index] = append(ctx.varPositions[n.Index], col)
		return col

	case Abstraction:
		startCol := ctx.currentCol

		for c := startCol; c < startCol+4 && c < d.Width; c++ {
			d.Set(row, c, '─')
		}

		ctx.currentCol = startCol + 1
		drawTerm(d, n.Body, ctx, row+1)

		return startCol

	case Application:
		funCol := drawTerm(d, n.Fun, ctx, row)
		argCol := drawTerm(d, n.Arg, ctx, row)

		if funCol < argCol {
			for c := funCol; c <= argCol; c++ {
				if d.Get(row, c) == ' ' {
					d.Set(row, c, '─')
				}
			}
		}
		return funCol
	}
	return ctx.currentCol
}
