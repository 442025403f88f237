// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/awcullen/uaclient/ua"
	"github.com/djherbis/buffer"
	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultBufferSize       = 64 * 1024
	defaultMaxWorkerThreads = 4
)

// bufferPool is a pool of capacity buffers
var bufferPool = buffer.NewMemPoolAt(int64(defaultBufferSize))

// Handler serves the requests that arrive at a LoopbackChannel.
type Handler interface {
	ServeRequest(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error)
}

// HandlerFunc is an adapter to use an ordinary function as a Handler.
type HandlerFunc func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error)

// ServeRequest calls f(ctx, req).
func (f HandlerFunc) ServeRequest(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	return f(ctx, req)
}

// LoopbackChannel is a RequestChannel that serves requests in process.
// Each request and response is encoded to UA Binary as an ExtensionObject and
// decoded again on the other side, so the handler sees exactly what a server
// would receive over the wire.
type LoopbackChannel struct {
	sync.RWMutex
	handler    Handler
	ec         ua.EncodingContext
	logger     *zap.Logger
	maxWorkers int
	workerpool *workerpool.WorkerPool
	closed     bool
	closing    chan struct{}
}

// LoopbackOption is a functional option to be applied to a LoopbackChannel during initialization.
type LoopbackOption func(*LoopbackChannel) error

// WithLogger sets the logger. (default: zap.NewNop())
func WithLogger(logger *zap.Logger) LoopbackOption {
	return func(ch *LoopbackChannel) error {
		if logger == nil {
			return errors.Wrap(ua.BadInvalidArgument, "logger is nil")
		}
		ch.logger = logger
		return nil
	}
}

// WithMaxWorkers sets the number of requests that are served concurrently. (default: 4)
func WithMaxWorkers(value int) LoopbackOption {
	return func(ch *LoopbackChannel) error {
		if value < 1 {
			return errors.Wrapf(ua.BadInvalidArgument, "max workers must be positive, got %d", value)
		}
		ch.maxWorkers = value
		return nil
	}
}

// WithEncodingContext sets the tables and type library used to encode and decode messages.
// (default: ua.NewEncodingContext())
func WithEncodingContext(ec ua.EncodingContext) LoopbackOption {
	return func(ch *LoopbackChannel) error {
		if ec == nil {
			return errors.Wrap(ua.BadInvalidArgument, "encoding context is nil")
		}
		ch.ec = ec
		return nil
	}
}

// NewLoopbackChannel returns a LoopbackChannel that serves requests with the given handler.
func NewLoopbackChannel(handler Handler, opts ...LoopbackOption) (*LoopbackChannel, error) {
	if handler == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "handler is nil")
	}
	ch := &LoopbackChannel{
		handler:    handler,
		logger:     zap.NewNop(),
		maxWorkers: defaultMaxWorkerThreads,
		closing:    make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(ch); err != nil {
			return nil, err
		}
	}
	if ch.ec == nil {
		ch.ec = ua.NewEncodingContext()
	}
	ch.workerpool = workerpool.New(ch.maxWorkers)
	return ch, nil
}

type loopbackResult struct {
	res ua.ServiceResponse
	err error
}

// Request encodes the request, serves it on a worker and decodes the response.
func (ch *LoopbackChannel) Request(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "request is nil")
	}
	reqStream := buffer.NewPartitionAt(bufferPool)
	if err := ch.writeMessage(reqStream, req); err != nil {
		reqStream.Reset()
		return nil, err
	}
	handle := req.Header().RequestHandle
	resultCh := make(chan loopbackResult, 1)

	// claimed is set by the worker when it starts, or by the caller when it
	// gives up first. Whoever sets it releases reqStream.
	var claimed atomic.Bool
	release := func() bool {
		if claimed.CompareAndSwap(false, true) {
			reqStream.Reset()
			return true
		}
		return false
	}

	ch.RLock()
	if ch.closed {
		ch.RUnlock()
		reqStream.Reset()
		return nil, ua.BadSecureChannelClosed
	}
	ch.workerpool.Submit(func() {
		if !claimed.CompareAndSwap(false, true) {
			return
		}
		defer reqStream.Reset()
		resultCh <- ch.serve(ctx, reqStream)
	})
	ch.RUnlock()

	select {
	case r := <-resultCh:
		if r.err != nil && ctx.Err() != nil {
			ch.logger.Debug("request timed out", zap.Uint32("handle", handle))
			return nil, ua.BadRequestTimeout
		}
		if r.err != nil {
			ch.logger.Debug("request failed", zap.Uint32("handle", handle), zap.Error(r.err))
		}
		return r.res, r.err
	case <-ctx.Done():
		release()
		ch.logger.Debug("request timed out", zap.Uint32("handle", handle))
		return nil, ua.BadRequestTimeout
	case <-ch.closing:
		// Stop discards queued tasks, so a request no worker started is released here.
		release()
		return nil, ua.BadSecureChannelClosed
	}
}

// serve decodes the request, calls the handler and round-trips the response.
func (ch *LoopbackChannel) serve(ctx context.Context, reqStream buffer.BufferAt) loopbackResult {
	body, err := ch.readMessage(reqStream)
	if err != nil {
		return loopbackResult{err: err}
	}
	req, ok := body.(ua.ServiceRequest)
	if !ok {
		return loopbackResult{err: errors.Wrapf(ua.BadServiceUnsupported, "%T is not a service request", body)}
	}
	ch.logger.Debug("serving request", zap.String("type", fmt.Sprintf("%T", req)), zap.Uint32("handle", req.Header().RequestHandle))
	res, err := ch.handler.ServeRequest(ctx, req)
	if err != nil {
		return loopbackResult{err: err}
	}
	if res == nil {
		return loopbackResult{err: errors.Wrap(ua.BadUnknownResponse, "handler returned no response")}
	}
	resStream := buffer.NewPartitionAt(bufferPool)
	defer resStream.Reset()
	if err := ch.writeMessage(resStream, res); err != nil {
		return loopbackResult{err: err}
	}
	body, err = ch.readMessage(resStream)
	if err != nil {
		return loopbackResult{err: err}
	}
	res, ok = body.(ua.ServiceResponse)
	if !ok {
		return loopbackResult{err: errors.Wrapf(ua.BadUnknownResponse, "%T is not a service response", body)}
	}
	return loopbackResult{res: res}
}

// writeMessage writes the message as an ExtensionObject, identified by its binary encoding id.
func (ch *LoopbackChannel) writeMessage(w buffer.BufferAt, msg ua.Encodable) error {
	eo, err := ua.NewExtensionObject(msg, ch.ec.TypeLibrary())
	if err != nil {
		return err
	}
	return ua.NewBinaryEncoder(w, ch.ec).WriteExtensionObject(eo)
}

// readMessage reads an ExtensionObject and returns its body. A body of
// unknown type is reported as BadDataEncodingUnsupported.
func (ch *LoopbackChannel) readMessage(r buffer.BufferAt) (ua.Encodable, error) {
	var eo *ua.ExtensionObject
	if err := ua.NewBinaryDecoder(r, ch.ec).ReadExtensionObject(&eo); err != nil {
		return nil, err
	}
	body, ok := eo.Encodable()
	if !ok {
		return nil, errors.Wrapf(ua.BadDataEncodingUnsupported, "no type registered for %s", eo.TypeID())
	}
	return body, nil
}

// Close stops the workers. Requests that are pending return BadSecureChannelClosed.
// Close waits for the handlers that are running to return.
func (ch *LoopbackChannel) Close() error {
	ch.Lock()
	if ch.closed {
		ch.Unlock()
		return nil
	}
	ch.closed = true
	close(ch.closing)
	ch.Unlock()
	ch.workerpool.Stop()
	ch.logger.Debug("loopback channel closed")
	return nil
}
