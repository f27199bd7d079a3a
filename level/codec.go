package level

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/thomasahle/trainbox/model"
)

// Encode serializes a track with msgpack.
func Encode(track model.Component) ([]byte, error) {
	data, err := msgpack.Marshal(NodeOf(track))
	if err != nil {
		return nil, fmt.Errorf("encode track: %w", err)
	}
	return data, nil
}

// Decode restores a track written by Encode.
func Decode(data []byte) (model.Component, error) {
	var n Node
	if err := msgpack.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	track, err := n.Model()
	if err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	return track, nil
}
