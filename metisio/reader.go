package metisio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dfvs/dfvsgraph"
)

const maxLineBytes = 16 * 1024 * 1024

// ReadGraph parses the METIS-derived DFVS format: a header line "n m 0",
// then n adjacency lines (1-indexed out-neighbors of vertex i, i in
// [1,n]). `%`-prefixed comment lines are skipped anywhere and blank lines
// are skipped before the header; after the header a blank line is a
// vertex with no out-neighbors. Nothing after the n-th adjacency line is
// read. Vertex i's line becomes g's vertex i-1.
func ReadGraph(r io.Reader) (*dfvsgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	n, m, err := readHeader(scanner, &lineNo)
	if err != nil {
		return nil, err
	}

	g := dfvsgraph.NewGraph(n)
	edgeCount := 0
	vertex := 0

	for vertex < n {
		if !scanner.Scan() {
			break
		}
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "%") {
			continue
		}
		v := vertex
		vertex++
		if text == "" {
			continue
		}
		for _, tok := range strings.Fields(text) {
			id, convErr := strconv.Atoi(tok)
			if convErr != nil || id < 1 || id > n {
				return nil, &LineError{Line: lineNo, Err: ErrInvalidNeighborID}
			}
			g.AddEdge(v, id-1)
			edgeCount++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if vertex < n {
		return nil, &LineError{Line: lineNo, Err: ErrTooFewAdjacencyLines}
	}
	if edgeCount != m {
		return nil, &LineError{
			Line: lineNo,
			Err:  fmt.Errorf("%w: declared %d, parsed %d", ErrEdgeCountMismatch, m, edgeCount),
		}
	}

	return g, nil
}

func readHeader(scanner *bufio.Scanner, lineNo *int) (n, m int, err error) {
	for scanner.Scan() {
		*lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 3 || fields[2] != "0" {
			return 0, 0, &LineError{Line: *lineNo, Err: ErrMalformedHeader}
		}
		n, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, &LineError{Line: *lineNo, Err: fmt.Errorf("%w: %v", ErrMalformedHeader, err)}
		}
		m, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, &LineError{Line: *lineNo, Err: fmt.Errorf("%w: %v", ErrMalformedHeader, err)}
		}
		if n < 0 || m < 0 {
			return 0, 0, &LineError{Line: *lineNo, Err: ErrMalformedHeader}
		}

		return n, m, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}

	return 0, 0, &LineError{Line: *lineNo, Err: ErrMalformedHeader}
}
