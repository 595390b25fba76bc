package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	headerSize = 80
	// 12 float32 (normal + 3 vertices) + uint16 attribute byte count
	recordSize = 50
)

// triangleRecord is the fixed 50-byte on-disk layout of one facet.
// Attribute is the "attribute byte count" field; always zero here.
type triangleRecord struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

func packVector(v [3]float64) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// WriteBinary serializes the model to w in binary STL format: an
// 80-byte header, a little-endian uint32 triangle count, then one
// 50-byte record per triangle in model order. The header text is
// truncated to 80 bytes if longer and zero-padded if shorter.
func WriteBinary(w io.Writer, header string, m *Model) error {
	var hdr [headerSize]byte
	copy(hdr[:], header)
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range m.Triangles {
		record := triangleRecord{
			Normal: packVector([3]float64{triangle.Normal.X, triangle.Normal.Y, triangle.Normal.Z}),
			V1:     packVector([3]float64{triangle.V1.X, triangle.V1.Y, triangle.V1.Z}),
			V2:     packVector([3]float64{triangle.V2.X, triangle.V2.Y, triangle.V2.Z}),
			V3:     packVector([3]float64{triangle.V3.X, triangle.V3.Y, triangle.V3.Z}),
		}
		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

// WriteFile writes the model to a binary STL file, creating or
// overwriting the file at filename. A failure mid-write leaves a
// truncated file behind; no recovery is attempted.
func WriteFile(filename, header string, m *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := bufio.NewWriter(file)
	if err := WriteBinary(writer, header, m); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
