package util

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	return nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// WriteJSONLines writes every item as one JSON document per line.
func WriteJSONLines[A any](w io.Writer, items []A) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func CreateJSONLines[A any](filename string, items []A) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("couldn't open file %s: %w", filename, err)
	}
	defer f.Close()

	return WriteJSONLines(f, items)
}
