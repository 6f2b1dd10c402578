package graph

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Cell characters of the grid map format
const (
	CellFree     = '.'
	CellObstacle = '#'
	CellStart    = 'S'
	CellFinish   = 'F'
	CellPath     = '*'
	CellVisited  = 'o'
)

// GridMap is a grid together with its selected endpoints.
// Start and Finish are -1 if the map does not contain them.
type GridMap struct {
	Grid   *GridGraph
	Start  NodeId
	Finish NodeId
}

// Parse a grid map. Each line is a row of cells:
// '.' free, '#' obstacle, 'S' start, 'F' finish.
// Empty lines and lines starting with "//" are skipped.
func ParseGridMap(text string, conn Connectivity) (*GridMap, error) {
	rows := make([]string, 0)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if len(line) == 0 || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	gg, err := NewGridGraph(width, len(rows), conn)
	if err != nil {
		return nil, err
	}

	m := &GridMap{Grid: gg, Start: -1, Finish: -1}
	for y, row := range rows {
		for x, c := range []byte(row) {
			id := gg.Index(x, y)
			switch c {
			case CellFree:
			case CellObstacle:
				gg.SetObstacle(id, true)
			case CellStart:
				if m.Start >= 0 {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateEndpoint, x, y)
				}
				m.Start = id
			case CellFinish:
				if m.Finish >= 0 {
					return nil, fmt.Errorf("%w: second finish at (%d,%d)", ErrDuplicateEndpoint, x, y)
				}
				m.Finish = id
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, c, x, y)
			}
		}
	}
	return m, nil
}

func ReadGridMapFile(filename string, conn Connectivity) (*GridMap, error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseGridMap(string(text), conn)
}

func WriteGridMapFile(m *GridMap, filename string) error {
	return os.WriteFile(filename, []byte(m.String()), 0o644)
}

// Format the map in the grid map format
func (m *GridMap) String() string {
	return RenderGridMap(m.Grid, m.Start, m.Finish, nil, nil)
}

// Render the grid with the endpoints, the given path ('*') and the visited cells ('o').
// path and visited may be nil
func RenderGridMap(gg *GridGraph, start, finish NodeId, path []NodeId, visited []bool) string {
	cells := make([]byte, gg.NodeCount())
	for id := range cells {
		switch {
		case gg.IsObstacle(id):
			cells[id] = CellObstacle
		case visited != nil && id < len(visited) && visited[id]:
			cells[id] = CellVisited
		default:
			cells[id] = CellFree
		}
	}
	for _, id := range path {
		cells[id] = CellPath
	}
	if start >= 0 && start < len(cells) {
		cells[start] = CellStart
	}
	if finish >= 0 && finish < len(cells) {
		cells[finish] = CellFinish
	}

	var sb strings.Builder
	sb.Grow(len(cells) + gg.Height)
	for y := 0; y < gg.Height; y++ {
		sb.Write(cells[y*gg.Width : (y+1)*gg.Width])
		sb.WriteByte('\n')
	}
	return sb.String()
}
