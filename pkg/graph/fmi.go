package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

func WriteFmi(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

// Parse a graph in the fmi format.
// Nodes are given as "id x y [obstacle]", arcs as "from to"
func NewAdjacencyListFromFmiString(fmi string) (*AdjacencyListGraph, error) {
	scanner := bufio.NewScanner(strings.NewReader(fmi))

	numNodes := 0
	numParsedNodes := 0

	alg := NewAdjacencyListGraph()
	id2index := make(map[int]int)

	parseState := PARSE_NODE_COUNT
	lineNumber := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNumber++
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: node count: %v", ErrInvalidFmi, lineNumber, err)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			if _, err := strconv.Atoi(line); err != nil {
				return nil, fmt.Errorf("%w: line %d: arc count: %v", ErrInvalidFmi, lineNumber, err)
			}
			parseState = PARSE_NODES
			if numNodes == 0 {
				parseState = PARSE_EDGES
			}
		case PARSE_NODES:
			var id, x, y, obstacle int
			n, _ := fmt.Sscanf(line, "%d %d %d %d", &id, &x, &y, &obstacle)
			if n < 3 {
				return nil, fmt.Errorf("%w: line %d: node %q", ErrInvalidFmi, lineNumber, line)
			}
			id2index[id] = alg.NodeCount()
			alg.AddNode(MakeNode(x, y, obstacle != 0))
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			var from, to int
			if n, _ := fmt.Sscanf(line, "%d %d", &from, &to); n < 2 {
				return nil, fmt.Errorf("%w: line %d: arc %q", ErrInvalidFmi, lineNumber, line)
			}
			fromIndex, okFrom := id2index[from]
			toIndex, okTo := id2index[to]
			if !okFrom || !okTo {
				return nil, fmt.Errorf("%w: line %d: arc %v -> %v references unknown node", ErrInvalidFmi, lineNumber, from, to)
			}
			alg.AddArc(fromIndex, toIndex)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if alg.NodeCount() != numNodes {
		return nil, fmt.Errorf("%w: expected %v nodes, parsed %v", ErrInvalidFmi, numNodes, alg.NodeCount())
	}

	return alg, nil
}

func NewAdjacencyListFromFmiFile(filename string) (*AdjacencyListGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromFmiString(string(fmi))
}

func NewAdjacencyArrayFromFmiString(fmi string) (*AdjacencyArrayGraph, error) {
	alg, err := NewAdjacencyListFromFmiString(fmi)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromGraph(alg), nil
}

func NewAdjacencyArrayFromFmiFile(filename string) (*AdjacencyArrayGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromFmiString(string(fmi))
}
