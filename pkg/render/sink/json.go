package sink

import (
	"bytes"

	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/linkset"
)

// RenderJSON dumps the laid out poses of every connector in set.
func RenderJSON(set *linkset.Set, width, height float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := pkgio.WriteLayout(set.Dump(width, height), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
