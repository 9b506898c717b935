package plugin

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Decoder reads one frame per call and returns io.EOF at the end of input.
type Decoder interface {
	Decode(v any) error
}

// Encoder writes one frame per call.
type Encoder interface {
	Encode(v any) error
}

// Codec frames requests and responses on a byte stream.
type Codec interface {
	Name() string
	NewDecoder(r io.Reader) Decoder
	NewEncoder(w io.Writer) Encoder
}

// CodecByName returns the codec selected on the command line.
func CodecByName(name string) (Codec, error) {
	switch name {
	case CodecJSON:
		return jsonCodec{}, nil
	case CodecMsgpack:
		return msgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q, expected %q or %q", name, CodecJSON, CodecMsgpack)
	}
}

// jsonCodec reads and writes newline delimited JSON objects.
type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecJSON }

func (jsonCodec) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

func (jsonCodec) NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// msgpackCodec writes consecutive msgpack maps keyed by field name.
type msgpackCodec struct{}

func (msgpackCodec) Name() string { return CodecMsgpack }

func (msgpackCodec) NewDecoder(r io.Reader) Decoder {
	return msgpack.NewDecoder(r)
}

func (msgpackCodec) NewEncoder(w io.Writer) Encoder {
	return msgpack.NewEncoder(w)
}
