// Package iofmt reads and writes the flat text file formats used to
// exchange scalar complexes, contour trees, join/split trees, weight maps,
// and color maps with the rest of the toolchain.
package iofmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadVertexValues reads one floating-point value per line.
func ReadVertexValues(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	var values []float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("iofmt: vertex value file line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("iofmt: reading vertex value file: %w", err)
	}
	return values, nil
}

// WriteVertexValues writes one floating-point value per line.
func WriteVertexValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := fmt.Fprintf(bw, "%g\n", v); err != nil {
			return fmt.Errorf("iofmt: writing vertex value file: %w", err)
		}
	}
	return bw.Flush()
}
