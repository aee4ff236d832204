package kernel

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// WriteSTL writes the mesh to w in binary STL format. The header embeds
// the mesh name, truncated to the 80-byte header field.
func WriteSTL(m *Mesh, w io.Writer) error {
	var header [80]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("kernel: write stl header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("kernel: write stl triangle count: %w", err)
	}

	var rec [50]byte
	for t := 0; t < int(count); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]

		// Per-face normal: the mesh stores per-vertex normals that are
		// constant across a face, so the first vertex's normal is the
		// face normal.
		putVec(rec[0:], m.Normals[i0*3], m.Normals[i0*3+1], m.Normals[i0*3+2])
		putVec(rec[12:], m.Vertices[i0*3], m.Vertices[i0*3+1], m.Vertices[i0*3+2])
		putVec(rec[24:], m.Vertices[i1*3], m.Vertices[i1*3+1], m.Vertices[i1*3+2])
		putVec(rec[36:], m.Vertices[i2*3], m.Vertices[i2*3+1], m.Vertices[i2*3+2])
		rec[48] = 0 // attribute byte count
		rec[49] = 0

		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("kernel: write stl triangle %d: %w", t, err)
		}
	}
	return nil
}

// WriteSTLFile writes the mesh to path in binary STL format,
// overwriting any existing file.
func WriteSTLFile(m *Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kernel: create %s: %w", path, err)
	}
	if err := WriteSTL(m, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("kernel: close %s: %w", path, err)
	}
	return nil
}

func putVec(b []byte, x, y, z float32) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(z))
}
