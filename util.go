package zmq

import (
	"errors"
	"strings"
)

// ErrBadEndpoint is returned by SplitEndpoint for a string that has no
// "transport://" prefix.
var ErrBadEndpoint = errors.New("endpoint has no transport scheme")

// SplitEndpoint splits "tcp://127.0.0.1:5555" into "tcp" and
// "127.0.0.1:5555".  Bind and Connect never call it: the grammar belongs to
// libzmq.  It exists for configuration checks and log fields.
func SplitEndpoint(endpoint string) (transport, address string, err error) {
	i := strings.Index(endpoint, "://")
	if i <= 0 {
		return "", endpoint, ErrBadEndpoint
	}
	return endpoint[:i], endpoint[i+len("://"):], nil
}
