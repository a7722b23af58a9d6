package config

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/funkygao/zmq"
)

// Topology is an open context with the named sockets of a Config.
type Topology struct {
	ctx     *zmq.Context
	sockets map[string]*zmq.Socket
	order   []string
}

// Open creates the context and every socket, applies options, then binds
// and connects.  Binds of all sockets happen before any connect.  On any
// failure everything already opened is closed again.
func Open(cfg *Config) (t *Topology, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, err := zmq.Init(cfg.IOThreads)
	if err != nil {
		return nil, err
	}

	t = &Topology{ctx: ctx, sockets: make(map[string]*zmq.Socket, len(cfg.Sockets))}
	defer func() {
		if err != nil {
			err = multierr.Append(err, t.Close())
			t = nil
		}
	}()

	for i := range cfg.Sockets {
		sc := &cfg.Sockets[i]
		kind, _ := sc.SocketKind()
		s, err := ctx.Socket(kind)
		if err != nil {
			return t, fmt.Errorf("socket %s: %w", sc.Name, err)
		}
		t.sockets[sc.Name] = s
		t.order = append(t.order, sc.Name)

		// sorted so failures are reproducible
		names := make([]string, 0, len(sc.Options))
		for name := range sc.Options {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			o, _ := zmq.OptionByName(name)
			if err := applyOption(s, o, sc.Options[name]); err != nil {
				return t, fmt.Errorf("socket %s: option %s: %w", sc.Name, name, err)
			}
		}
	}

	for i := range cfg.Sockets {
		sc := &cfg.Sockets[i]
		for _, ep := range sc.Bind {
			if err := t.sockets[sc.Name].Bind(ep); err != nil {
				return t, fmt.Errorf("socket %s: %w", sc.Name, err)
			}
		}
	}
	for i := range cfg.Sockets {
		sc := &cfg.Sockets[i]
		for _, ep := range sc.Connect {
			if err := t.sockets[sc.Name].Connect(ep); err != nil {
				return t, fmt.Errorf("socket %s: %w", sc.Name, err)
			}
		}
	}

	zmq.Logger().Info("topology open", zap.Strings("sockets", t.order), zap.Int("io_threads", cfg.IOThreads))
	return t, nil
}

func (this *Topology) Context() *zmq.Context {
	return this.ctx
}

// Socket returns the socket configured under name.
func (this *Topology) Socket(name string) (*zmq.Socket, bool) {
	s, ok := this.sockets[name]
	return s, ok
}

// Names lists the sockets in configuration order.
func (this *Topology) Names() []string {
	return append([]string(nil), this.order...)
}

// Close closes every socket in reverse order, then terminates the context.
// All failures are returned together.
func (this *Topology) Close() (err error) {
	for i := len(this.order) - 1; i >= 0; i-- {
		name := this.order[i]
		if s, ok := this.sockets[name]; ok {
			err = multierr.Append(err, s.Close())
			delete(this.sockets, name)
		}
	}
	this.order = nil
	return multierr.Append(err, this.ctx.Term())
}
