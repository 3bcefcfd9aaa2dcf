package metisio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// WriteSolution writes s (a feedback vertex set, in g's 0-indexed ids)
// as the METIS-derived output format: one 1-indexed vertex per line,
// ascending, with no trailing content for an empty solution.
func WriteSolution(w io.Writer, s []int) error {
	sorted := append([]int(nil), s...)
	sort.Ints(sorted)

	bw := bufio.NewWriter(w)
	for _, v := range sorted {
		if _, err := fmt.Fprintf(bw, "%d\n", v+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
