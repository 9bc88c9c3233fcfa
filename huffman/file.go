package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// EncodeFile compresses the file at inPath into outPath.
// The output file is removed when encoding fails.
func EncodeFile(inPath, outPath string, opts ...Option) (err error) {
	data, err := readInput(inPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		err = closeOutput(out, err)
	}()

	bw := bufio.NewWriter(out)
	if err := Encode(bw, data, opts...); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return nil
}

// DecodeFile expands the compressed file at inPath into outPath.
// The output file is removed when decoding fails.
func DecodeFile(inPath, outPath string, opts ...Option) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		err = closeOutput(out, err)
	}()

	return Decode(out, bufio.NewReader(in), opts...)
}

// readInput reads the whole file, the encoder needs two passes over it.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	if info.Size() > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrInputTooLarge, path, info.Size())
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return data, nil
}

func closeOutput(f *os.File, err error) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrReadWrite, cerr)
	}
	if err != nil {
		err = errors.Join(err, removeIgnoreMissing(f.Name()))
	}
	return err
}

func removeIgnoreMissing(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
