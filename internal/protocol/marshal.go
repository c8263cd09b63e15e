package protocol

import (
	"bytes"
	"sync"

	"github.com/tinylib/msgp/msgp"
)

// Pool of buffers to avoid allocation and ensure thread safety
var bufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// Marshal serializes a message to msgpack format
func Marshal(v any) ([]byte, error) {
	msg, ok := wireMessage(v)
	if !ok {
		return nil, ErrUnknownMessageType
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	writer := msgp.NewWriter(buf)
	if err := msg.EncodeMsg(writer); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}

	// Copy out so the pooled buffer can be reused
	return bytes.Clone(buf.Bytes()), nil
}

// Unmarshal deserializes msgpack data into a message
func Unmarshal(data []byte, v any) error {
	msg, ok := wireMessage(v)
	if !ok {
		return ErrUnknownMessageType
	}
	return msg.DecodeMsg(msgp.NewReader(bytes.NewReader(data)))
}

// codec is implemented by every pointer to a wire message
type codec interface {
	msgp.Encodable
	msgp.Decodable
}

// wireMessage restricts Marshal and Unmarshal to the protocol's own types.
func wireMessage(v any) (codec, bool) {
	switch msg := v.(type) {
	case *OddsRequest:
		return msg, true
	case *OddsResponse:
		return msg, true
	case *Error:
		return msg, true
	}
	return nil, false
}

// PeekType returns the "type" field of an encoded message without decoding
// the rest of it.
func PeekType(data []byte) (string, error) {
	sz, rest, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return "", err
	}
	for range sz {
		var key []byte
		key, rest, err = msgp.ReadMapKeyZC(rest)
		if err != nil {
			return "", err
		}
		if string(key) == "type" {
			typ, _, err := msgp.ReadStringBytes(rest)
			return typ, err
		}
		rest, err = msgp.Skip(rest)
		if err != nil {
			return "", err
		}
	}
	return "", ErrMissingType
}
