package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// TestCompressionRatioAgainstZstd reports how static Huffman coding compares
// with a general purpose compressor. Huffman only exploits symbol frequencies,
// so it must not beat the entropy bound but should shrink skewed data.
func TestCompressionRatioAgainstZstd(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	skewed := make([]byte, 64*1024)
	for i := range skewed {
		skewed[i] = 'a' + byte(int(rng.ExpFloat64()*3)%26)
	}

	testCases := []struct {
		name     string
		data     []byte
		maxRatio float64 // Maximum acceptable Huffman ratio in percent
	}{
		{"english", []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. It was not amused. ", 1000)), 62},
		{"skewed", skewed, 50},
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter failed: %v", err)
	}
	defer enc.Close()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			huff, err := Compress(tc.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			z := enc.EncodeAll(tc.data, nil)

			huffRatio := 100 * float64(len(huff)) / float64(len(tc.data))
			zRatio := 100 * float64(len(z)) / float64(len(tc.data))
			t.Logf("Original: %d bytes, Huffman: %d bytes (%.2f%%), zstd: %d bytes (%.2f%%)",
				len(tc.data), len(huff), huffRatio, len(z), zRatio)

			if huffRatio > tc.maxRatio {
				t.Errorf("Huffman ratio %.2f%% exceeds %.2f%%", huffRatio, tc.maxRatio)
			}
		})
	}
}
