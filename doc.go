// Package zmq provides safe Go bindings for the libzmq messaging library.
// Applications create a Context, open typed sockets (pub/sub, request/reply,
// push/pull, router/dealer, pair) from it, bind or connect them to
// endpoints, and exchange discrete binary messages.
//
// Every failure reported by libzmq is returned as a *Error carrying a Kind
// from a closed taxonomy, the raw errno and the failing operation.  Raw
// numeric codes and native memory never leak to callers: message buffers
// are allocated, copied and released inside each Send or Recv call.
//
// The binding is a faithful primitive surface.  It does not route, retry,
// or correlate requests with replies.  Multipart messages are sent with
// SNDMORE and received by looping over Recv while RcvMore reports true.
//
// A Context may be shared between goroutines.  A Socket must only be used
// by one goroutine at a time; this package does no locking of its own.
//
// For more information, see zeromq.org.
package zmq
