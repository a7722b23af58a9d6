package api

import (
	"github.com/google/uuid"

	"github.com/funkygao/zmq"
)

// NewIdentity returns 16 random bytes suitable for the IDENTITY option.
// The first byte is never zero: libzmq reserves identities starting with a
// zero byte for itself.
func NewIdentity() []byte {
	for {
		id := uuid.New()
		if id[0] != 0 {
			return id[:]
		}
	}
}

// SetRandomIdentity gives s a fresh identity and returns it.  It must be
// called before Bind or Connect to take effect.
func SetRandomIdentity(s *zmq.Socket) ([]byte, error) {
	id := NewIdentity()
	if err := s.SetBytes(zmq.IDENTITY, id); err != nil {
		return nil, err
	}
	return id, nil
}
