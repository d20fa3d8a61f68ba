package grid

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "anomaly.grd")

	g, err := New(ramp(5, 4), 5, 4, 0, 400, 100, 400)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := g.Save(fp); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Nx() != g.Nx() || got.Ny() != g.Ny() {
		t.Fatalf("dims: got %dx%d, want %dx%d", got.Nx(), got.Ny(), g.Nx(), g.Ny())
	}
	xmin, xmax, ymin, ymax := got.Extent()
	if xmin != 0 || xmax != 400 || ymin != 100 || ymax != 400 {
		t.Fatalf("extent mismatch: %f %f %f %f", xmin, xmax, ymin, ymax)
	}
	for j := 0; j < g.Ny(); j++ {
		for i := 0; i < g.Nx(); i++ {
			if got.Value(i, j) != g.Value(i, j) {
				t.Fatalf("value (%d,%d): got %g, want %g", i, j, got.Value(i, j), g.Value(i, j))
			}
		}
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"short.grd":    "2 2\n",
		"baddims.grd":  "two 2\n0 1 0 1\n0 1\n2 3\n",
		"badrow.grd":   "2 2\n0 1 0 1\n0 1\n2\n",
		"badval.grd":   "2 2\n0 1 0 1\n0 x\n2 3\n",
		"nanval.grd":   "2 2\n0 1 0 1\n0 NaN\n2 3\n",
		"rowcount.grd": "2 3\n0 1 0 2\n0 1\n2 3\n",
	}
	for name, body := range cases {
		fp := filepath.Join(dir, name)
		if err := os.WriteFile(fp, []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := Load(fp); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
}

func TestLoadSkipsComments(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "comment.grd")
	body := "# header\n\n2 2\n0 100 0 100\n1 2\n# interior comment\n3 4\n"
	if err := os.WriteFile(fp, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	g, err := Load(fp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Value(1, 1) != 4 {
		t.Fatalf("value (1,1): got %g, want 4", g.Value(1, 1))
	}
}
