// Package export persists finished point sets as flat CSV record lists.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/poiforge/internal/geo"
)

var header = []string{"latitude", "longitude"}

// CSVWriter writes one latitude,longitude record per point. It implements
// the assembler's Writer collaborator.
type CSVWriter struct{}

// Persist writes points to dest, overwriting any existing file.
func (CSVWriter) Persist(points []geo.Point, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", dest)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush")
}
