package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Load reads a grid from the plain-text interchange format written by Save:
//
//	nx ny
//	xmin xmax ymin ymax
//	<ny rows of nx whitespace-separated values, row 0 at ymin>
//
// Blank lines and lines starting with '#' are ignored.
func Load(fp string) (*Grid, error) {
	var lns []string
	for _, ln := range mmio.ReadTextLines(fp) {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		lns = append(lns, ln)
	}
	if len(lns) < 3 {
		return nil, fmt.Errorf("grid file %s: need header and at least one data row", fp)
	}

	dims := strings.Fields(lns[0])
	if len(dims) != 2 {
		return nil, fmt.Errorf("grid file %s: dimension header must hold nx ny: %q", fp, lns[0])
	}
	nx, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("grid file %s: bad nx: %w", fp, err)
	}
	ny, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("grid file %s: bad ny: %w", fp, err)
	}

	ext := strings.Fields(lns[1])
	if len(ext) != 4 {
		return nil, fmt.Errorf("grid file %s: extent header must hold xmin xmax ymin ymax: %q", fp, lns[1])
	}
	var bounds [4]float64
	for i, s := range ext {
		bounds[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("grid file %s: bad extent value %q: %w", fp, s, err)
		}
	}

	if len(lns) != 2+ny {
		return nil, fmt.Errorf("grid file %s: expected %d data rows, found %d", fp, ny, len(lns)-2)
	}

	data := make([]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		flds := strings.Fields(lns[2+j])
		if len(flds) != nx {
			return nil, fmt.Errorf("grid file %s: row %d holds %d values, want %d", fp, j, len(flds), nx)
		}
		for _, s := range flds {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("grid file %s: bad value %q in row %d: %w", fp, s, j, err)
			}
			data = append(data, v)
		}
	}

	return New(data, nx, ny, bounds[0], bounds[1], bounds[2], bounds[3])
}

// Save writes the grid in the plain-text interchange format read by Load.
func (g *Grid) Save(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("grid save %s: %w", fp, err)
	}
	defer tw.Close()

	tw.WriteLine("# algo-geomag grid")
	tw.WriteLine(fmt.Sprintf("%d %d", g.nx, g.ny))
	tw.WriteLine(fmt.Sprintf("%g %g %g %g", g.xmin, g.xmax, g.ymin, g.ymax))

	var sb strings.Builder
	for j := 0; j < g.ny; j++ {
		sb.Reset()
		for i := 0; i < g.nx; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(g.data[j*g.nx+i], 'g', -1, 64))
		}
		tw.WriteLine(sb.String())
	}
	return nil
}
