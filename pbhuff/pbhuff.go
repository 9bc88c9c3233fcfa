// Package pbhuff compresses protobuf messages with static Huffman coding.
//
// Messages are marshaled deterministically before coding, so equal messages
// always produce equal compressed bytes.
package pbhuff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"

	"github.com/egonelbre/exp-huffman-compression/huffman"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// Compress compresses a protobuf message and writes it to w.
func Compress(msg proto.Message, w io.Writer, opts ...huffman.Option) error {
	data, err := marshalOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", messageName(msg), err)
	}
	return huffman.Encode(w, data, opts...)
}

// Decompress decompresses data written by Compress into msg.
func Decompress(r io.Reader, msg proto.Message, opts ...huffman.Option) error {
	var buf bytes.Buffer
	if err := huffman.Decode(&buf, r, opts...); err != nil {
		return err
	}
	if err := proto.Unmarshal(buf.Bytes(), msg); err != nil {
		return fmt.Errorf("unmarshal %s: %w", messageName(msg), err)
	}
	return nil
}

// CompressedSize returns the number of bytes Compress writes for msg.
func CompressedSize(msg proto.Message, opts ...huffman.Option) (int, error) {
	var buf bytes.Buffer
	if err := Compress(msg, &buf, opts...); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// CompressAll compresses a sequence of messages as one stream.
// The messages share a single code table, which amortizes the header
// across small messages.
func CompressAll(msgs []proto.Message, w io.Writer, opts ...huffman.Option) error {
	var buf bytes.Buffer
	delim := protodelim.MarshalOptions{MarshalOptions: marshalOptions}
	for i, msg := range msgs {
		if _, err := delim.MarshalTo(&buf, msg); err != nil {
			return fmt.Errorf("message %d %s: %w", i, messageName(msg), err)
		}
	}
	return huffman.Encode(w, buf.Bytes(), opts...)
}

// DecompressAll decompresses a stream written by CompressAll.
// newMsg must return an empty message of the type that was compressed.
func DecompressAll(r io.Reader, newMsg func() proto.Message, opts ...huffman.Option) ([]proto.Message, error) {
	var buf bytes.Buffer
	if err := huffman.Decode(&buf, r, opts...); err != nil {
		return nil, err
	}

	var msgs []proto.Message
	data := bytes.NewReader(buf.Bytes())
	for {
		msg := newMsg()
		err := protodelim.UnmarshalFrom(data, msg)
		if errors.Is(err, io.EOF) {
			return msgs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("message %d %s: %w", len(msgs), messageName(msg), err)
		}
		msgs = append(msgs, msg)
	}
}

func messageName(msg proto.Message) string {
	if msg == nil {
		return "<nil>"
	}
	return string(msg.ProtoReflect().Descriptor().FullName())
}
