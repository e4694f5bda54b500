package cache

import (
	"encoding/json"
	"errors"
)

// Marshaler converts values to and from the byte form a remote backend
// stores. The in-memory backend keeps values as is and never touches it.
type Marshaler[V any] interface {
	Marshal(V) ([]byte, error)
	Unmarshal([]byte) (V, error)
}

// jsonCodec is the codec used when the caller passes a nil Marshaler.
type jsonCodec[V any] struct{}

func (jsonCodec[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		err = errors.Join(ErrMarshal, err)
	}
	return data, err
}

func (jsonCodec[V]) Unmarshal(data []byte) (V, error) {
	var v V
	err := json.Unmarshal(data, &v)
	if err != nil {
		err = errors.Join(ErrUnmarshal, err)
	}
	return v, err
}
