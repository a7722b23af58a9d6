// pubnub relays everything pushed to it out to its subscribers.
package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/funkygao/zmq"
	"github.com/funkygao/zmq/api"
)

func main() {
	pullAddr := flag.String("pull", "tcp://*:1900", "endpoint producers push to")
	pubAddr := flag.String("pub", "tcp://*:1910", "endpoint subscribers connect to")
	flag.Parse()

	log, _ := zap.NewProduction()
	defer log.Sync()
	zmq.SetLogger(log)

	ctx, err := zmq.Init(1)
	if err != nil {
		log.Fatal("init", zap.Error(err))
	}

	pull, err := ctx.Socket(zmq.PULL)
	if err != nil {
		log.Fatal("socket", zap.Error(err))
	}
	if err := pull.Bind(*pullAddr); err != nil {
		log.Fatal("bind", zap.Error(err))
	}
	log.Info("pipeline listening", zap.String("addr", *pullAddr))

	pub, err := ctx.Socket(zmq.PUB)
	if err != nil {
		log.Fatal("socket", zap.Error(err))
	}
	if err := pub.Bind(*pubAddr); err != nil {
		log.Fatal("bind", zap.Error(err))
	}
	log.Info("pub listening", zap.String("addr", *pubAddr))

	// one goroutine owns both sockets; multipart messages stay intact
	if err := api.Device(pull, pub); err != nil {
		log.Fatal("relay", zap.Error(err))
	}
}
