package main

import (
	"fmt"
	"os"

	"github.com/sprited/effectkit/effect"
)

// openContainer loads a container file into a byte store and reads its
// header. The CLI only inspects, so a plain in-memory copy is enough.
func openContainer(path string) (*effect.ByteStore, effect.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, effect.Header{}, err
	}
	store := effect.NewByteStore(data)
	h, err := effect.ReadHeader(store, 0)
	if err != nil {
		return nil, effect.Header{}, fmt.Errorf("%s: %w", path, err)
	}
	return store, h, nil
}
