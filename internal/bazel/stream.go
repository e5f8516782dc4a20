package bazel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/buddy-build/buddy/internal/styles"
)

const infoPrefix = "INFO:"

// Restyle forwards diagnostic lines from r to w as they arrive. Lines
// carrying the launcher's informational prefix are re-emitted with the
// prefix visually distinguished; everything else passes through unchanged.
// Lines carry no length cap: the reader must drain r to EOF no matter what
// the child emits, or the child blocks writing into a full pipe. It returns
// once r reaches EOF.
func Restyle(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			emitLine(w, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading diagnostics: %w", err)
		}
	}
}

func emitLine(w io.Writer, line string) {
	if rest, ok := strings.CutPrefix(line, infoPrefix); ok {
		fmt.Fprintf(w, "%s%s\n", styles.InfoPrefix(), rest)
	} else {
		fmt.Fprintln(w, line)
	}
}
