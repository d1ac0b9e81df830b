// Package coo reads the binary coordinate-triplet input file: a header
// of two little-endian uint64s (nrows, ncols) followed by repeated
// 17-byte records (row uint64, col uint64, value uint8). Grounded on
// original_source/src/main.c:read_coo, translated from fread+memcpy
// into encoding/binary, the way the teacher's own cmd/preprocess
// readers decode fixed binary layouts.
package coo

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/katalvlaran/pc3-recommend/internal/errs"
)

// recordSize is 2*uint64 + uint8, matching TRIPLET_SIZE in the original.
const recordSize = 2*8 + 1

// Triplets holds the raw (unordered, possibly duplicated) coordinate
// stream read from a file, ready to hand to sparse.BuildFromCOO.
type Triplets struct {
	NRows, NCols int
	Row, Col     []int
	Value        []float64
}

// ReadFile opens path and decodes its header and body. The record count
// is inferred from the remaining file length after the 16-byte header,
// matching the original's two-pass fread-to-EOF-then-rewind strategy.
func ReadFile(path string) (*Triplets, error) {
	const op = "coo.ReadFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(op, errs.KindInvalid, err)
	}
	defer f.Close()

	var header [16]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, errs.Wrap(op, errs.KindInvalid, err)
	}
	nrows := binary.LittleEndian.Uint64(header[0:8])
	ncols := binary.LittleEndian.Uint64(header[8:16])

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(op, errs.KindInvalid, err)
	}
	bodyBytes := info.Size() - 16
	if bodyBytes < 0 || bodyBytes%recordSize != 0 {
		return nil, errs.New(op, errs.KindInvalid)
	}
	nvals := int(bodyBytes / recordSize)

	t := &Triplets{
		NRows: int(nrows),
		NCols: int(ncols),
		Row:   make([]int, nvals),
		Col:   make([]int, nvals),
		Value: make([]float64, nvals),
	}

	var rec [recordSize]byte
	for i := 0; i < nvals; i++ {
		if _, err := io.ReadFull(f, rec[:]); err != nil {
			return nil, errs.Wrap(op, errs.KindInvalid, err)
		}
		t.Row[i] = int(binary.LittleEndian.Uint64(rec[0:8]))
		t.Col[i] = int(binary.LittleEndian.Uint64(rec[8:16]))
		t.Value[i] = float64(rec[16])
	}

	return t, nil
}
