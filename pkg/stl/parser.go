package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/1cedsoda/cubegen/pkg/geometry"
)

// Parse reads a binary STL file and returns a Model. The model name is
// taken from the header text (trailing zero padding stripped). ASCII
// STL files are rejected.
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return parseBinary(file, info.Size())
}

func parseBinary(reader io.Reader, fileSize int64) (*Model, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	// A binary STL has a size fully determined by its triangle count.
	// An ASCII file or a truncated binary one fails this check.
	expected := int64(headerSize) + 4 + int64(triangleCount)*recordSize
	if fileSize != expected {
		if bytes.HasPrefix(header, []byte("solid ")) {
			return nil, fmt.Errorf("ASCII STL is not supported")
		}
		return nil, fmt.Errorf("file size %d does not match %d triangles (want %d bytes)",
			fileSize, triangleCount, expected)
	}

	model := NewModel(string(bytes.TrimRight(header, "\x00")))
	model.Triangles = make([]geometry.Triangle, 0, triangleCount)

	for i := uint32(0); i < triangleCount; i++ {
		var record triangleRecord
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			unpackVector(record.Normal),
			unpackVector(record.V1),
			unpackVector(record.V2),
			unpackVector(record.V3),
		))
	}

	return model, nil
}

func unpackVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
