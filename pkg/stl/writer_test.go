package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hstl "github.com/hschendel/stl"

	"github.com/1cedsoda/cubegen/pkg/geometry"
)

func cubeModel(t *testing.T, size float64) *Model {
	t.Helper()
	triangles, err := geometry.Cube(size)
	if err != nil {
		t.Fatalf("Cube failed: %v", err)
	}
	return ModelFrom("test cube", triangles)
}

func TestWriteBinaryLayout(t *testing.T) {
	model := cubeModel(t, 20)
	header := "Binary STL - 20mm Calibration Cube"

	var buf bytes.Buffer
	if err := WriteBinary(&buf, header, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	data := buf.Bytes()

	// 80-byte header + 4-byte count + 12 * 50-byte records
	if len(data) != 684 {
		t.Fatalf("expected 684 bytes, got %d", len(data))
	}

	gotHeader := string(bytes.TrimRight(data[:80], "\x00"))
	if gotHeader != header {
		t.Errorf("header mismatch: expected %q, got %q", header, gotHeader)
	}

	count := binary.LittleEndian.Uint32(data[80:84])
	if count != 12 {
		t.Errorf("expected triangle count 12, got %d", count)
	}

	// First record is a bottom-face triangle with normal (0, 0, -1)
	record := data[84 : 84+50]
	normalZ := math.Float32frombits(binary.LittleEndian.Uint32(record[8:12]))
	if normalZ != -1 {
		t.Errorf("expected first normal z -1, got %v", normalZ)
	}

	// Attribute byte count is always zero
	for i := 0; i < 12; i++ {
		offset := 84 + i*50 + 48
		if attr := binary.LittleEndian.Uint16(data[offset : offset+2]); attr != 0 {
			t.Errorf("triangle %d: expected attribute count 0, got %d", i, attr)
		}
	}
}

func TestWriteBinaryHeaderPadding(t *testing.T) {
	model := cubeModel(t, 20)

	var buf bytes.Buffer
	if err := WriteBinary(&buf, "", model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes()[:80], make([]byte, 80)) {
		t.Errorf("expected empty header to produce 80 zero bytes")
	}

	long := strings.Repeat("x", 100)
	buf.Reset()
	if err := WriteBinary(&buf, long, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	if gotHeader := string(buf.Bytes()[:80]); gotHeader != long[:80] {
		t.Errorf("expected header truncated to 80 bytes, got %q", gotHeader)
	}
	if len(buf.Bytes()) != 684 {
		t.Errorf("expected 684 bytes, got %d", len(buf.Bytes()))
	}
}

func TestWriteFileDeterministic(t *testing.T) {
	model := cubeModel(t, 20)
	dir := t.TempDir()

	path1 := filepath.Join(dir, "cube1.stl")
	path2 := filepath.Join(dir, "cube2.stl")
	for _, path := range []string{path1, path2} {
		if err := WriteFile(path, "calibration cube", model); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	data1, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	data2, err := os.ReadFile(path2)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !bytes.Equal(data1, data2) {
		t.Errorf("expected identical inputs to produce byte-identical files")
	}
}

func TestWriteFileBadPath(t *testing.T) {
	model := cubeModel(t, 20)
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "cube.stl")

	if err := WriteFile(path, "", model); err == nil {
		t.Errorf("expected error for unwritable path")
	}
}

// TestWriteFileForeignReader decodes the output with an independent STL
// implementation to make sure the layout is interoperable.
func TestWriteFileForeignReader(t *testing.T) {
	model := cubeModel(t, 20)
	path := filepath.Join(t.TempDir(), "cube.stl")

	if err := WriteFile(path, "interop check", model); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	solid, err := hstl.ReadFile(path)
	if err != nil {
		t.Fatalf("foreign reader failed: %v", err)
	}

	if len(solid.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(solid.Triangles))
	}

	min := [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, tri := range solid.Triangles {
		for _, vertex := range tri.Vertices {
			for c := 0; c < 3; c++ {
				if vertex[c] < min[c] {
					min[c] = vertex[c]
				}
				if vertex[c] > max[c] {
					max[c] = vertex[c]
				}
			}
		}
	}

	expectedMin := [3]float32{-10, -10, 0}
	expectedMax := [3]float32{10, 10, 20}
	if min != expectedMin {
		t.Errorf("expected min %v, got %v", expectedMin, min)
	}
	if max != expectedMax {
		t.Errorf("expected max %v, got %v", expectedMax, max)
	}
}
