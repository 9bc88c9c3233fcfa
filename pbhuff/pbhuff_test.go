package pbhuff

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/egonelbre/exp-huffman-compression/huffman"
)

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("NewStruct failed: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		msg     proto.Message
		decoded proto.Message
	}{
		{
			name:    "empty",
			msg:     &emptypb.Empty{},
			decoded: &emptypb.Empty{},
		},
		{
			name:    "string",
			msg:     wrapperspb.String("Location: 37.5318,-122.3898. Temperature: 72.5F."),
			decoded: &wrapperspb.StringValue{},
		},
		{
			name:    "bytes",
			msg:     wrapperspb.Bytes([]byte{0x00, 0xFF, 0xFE, 0x00, 0x00}),
			decoded: &wrapperspb.BytesValue{},
		},
		{
			name: "struct",
			msg: mustStruct(t, map[string]any{
				"theme":    "dark",
				"volume":   7.5,
				"enabled":  true,
				"tags":     []any{"alpha", "beta", "gamma"},
				"settings": map[string]any{"language": "en", "retries": 3.0},
			}),
			decoded: &structpb.Struct{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Compress(tc.msg, &buf, huffman.WithWorkers(2)); err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if err := Decompress(&buf, tc.decoded); err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !proto.Equal(tc.msg, tc.decoded) {
				t.Errorf("Roundtrip failed.\nOriginal: %v\nDecoded: %v", tc.msg, tc.decoded)
			}
		})
	}
}

func TestCompressDeterministic(t *testing.T) {
	fields := map[string]any{}
	for i := 0; i < 50; i++ {
		fields[fmt.Sprintf("key%02d", i)] = fmt.Sprintf("value %d", i*i)
	}
	msg := mustStruct(t, fields)

	var a, b bytes.Buffer
	if err := Compress(msg, &a); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if err := Compress(msg, &b); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Encodings differ for the same message")
	}
}

func TestCompressedSize(t *testing.T) {
	text := bytes.Repeat([]byte("the rain in spain stays mainly in the plain "), 40)
	msg := wrapperspb.Bytes(text)

	size, err := CompressedSize(msg)
	if err != nil {
		t.Fatalf("CompressedSize failed: %v", err)
	}
	raw := proto.Size(msg)
	t.Logf("Marshaled: %d bytes, compressed: %d bytes", raw, size)
	if size >= raw {
		t.Errorf("Expected compressed size below %d, got %d", raw, size)
	}
}

func TestCompressAll(t *testing.T) {
	var msgs []proto.Message
	for i := 0; i < 20; i++ {
		msgs = append(msgs, wrapperspb.String(fmt.Sprintf("node %d reporting battery %d%%", i, 100-i)))
	}

	var buf bytes.Buffer
	if err := CompressAll(msgs, &buf); err != nil {
		t.Fatalf("CompressAll failed: %v", err)
	}
	decoded, err := DecompressAll(&buf, func() proto.Message { return &wrapperspb.StringValue{} })
	if err != nil {
		t.Fatalf("DecompressAll failed: %v", err)
	}

	if len(decoded) != len(msgs) {
		t.Fatalf("Expected %d messages, got %d", len(msgs), len(decoded))
	}
	for i := range msgs {
		if !proto.Equal(msgs[i], decoded[i]) {
			t.Errorf("Message %d: expected %v, got %v", i, msgs[i], decoded[i])
		}
	}
}

func TestCompressAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := CompressAll(nil, &buf); err != nil {
		t.Fatalf("CompressAll failed: %v", err)
	}
	decoded, err := DecompressAll(&buf, func() proto.Message { return &emptypb.Empty{} })
	if err != nil {
		t.Fatalf("DecompressAll failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Expected no messages, got %d", len(decoded))
	}
}

func TestDecompressCorrupt(t *testing.T) {
	var buf bytes.Buffer
	if err := Compress(wrapperspb.String("hello"), &buf); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	data := buf.Bytes()[:7]

	err := Decompress(bytes.NewReader(data), &wrapperspb.StringValue{})
	if !errors.Is(err, huffman.ErrTruncatedHeader) {
		t.Errorf("Expected ErrTruncatedHeader, got %v", err)
	}
}

func TestDecompressInvalidMessage(t *testing.T) {
	// 0xFF is not a valid protobuf tag.
	var buf bytes.Buffer
	if err := huffman.Encode(&buf, []byte{0xFF, 0xFF, 0xFF}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := Decompress(&buf, &wrapperspb.StringValue{}); err == nil {
		t.Error("Expected unmarshal error, got nil")
	}
}
