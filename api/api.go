package api

import (
	"github.com/funkygao/zmq"
)

type PubSocket struct {
	*Socket
}

func NewPubSocket(ctx *zmq.Context) (*PubSocket, error) {
	s, err := NewSocket(ctx, zmq.PUB)
	if err != nil {
		return nil, err
	}
	return &PubSocket{Socket: s}, nil
}

// Publish sends body under topic as a two part message.
func (this *PubSocket) Publish(topic string, body []byte) error {
	return this.SendMultipart([][]byte{[]byte(topic), body}, 0)
}

type SubSocket struct {
	*Socket
}

func NewSubSocket(ctx *zmq.Context) (*SubSocket, error) {
	s, err := NewSocket(ctx, zmq.SUB)
	if err != nil {
		return nil, err
	}
	return &SubSocket{Socket: s}, nil
}

// Subscribe filters on a topic prefix.  The empty topic matches everything.
func (this *SubSocket) Subscribe(topic string) error {
	return this.SetString(zmq.SUBSCRIBE, topic)
}

func (this *SubSocket) Unsubscribe(topic string) error {
	return this.SetString(zmq.UNSUBSCRIBE, topic)
}

// Next receives one message sent by PubSocket.Publish.
func (this *SubSocket) Next(flags zmq.Flag) (topic string, body []byte, err error) {
	parts, err := this.RecvMultipart(flags)
	if err != nil {
		return "", nil, err
	}
	topic = string(parts[0])
	if len(parts) > 1 {
		body = parts[1]
	}
	return
}
