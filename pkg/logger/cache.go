package logger

import (
	"errors"
	"sync"
	"sync/atomic"
)

// SinkFactory builds a sink on demand.
type SinkFactory func() (Sink, error)

var (
	// errNoSinkFactory is returned by a CachedSink created without a factory.
	errNoSinkFactory = errors.New("sink factory is not set")
	// errNilSink is returned when the factory reports success but builds no sink.
	errNilSink = errors.New("sink factory returned no sink")
)

// CachedSink builds its underlying sink on the first Emit and reuses it
// afterwards. A factory error is cached too and returned from every Emit.
type CachedSink struct {
	// factory constructs the underlying sink.
	factory SinkFactory
	// once guards the single factory call.
	once sync.Once
	// ready is set after the factory has run.
	ready atomic.Bool
	// sink is the constructed sink, nil if the factory failed.
	sink Sink
	// err is the factory error, if any.
	err error
}

// NewCachedSink returns a sink that defers construction to factory.
func NewCachedSink(factory SinkFactory) *CachedSink {
	return &CachedSink{
		factory: factory,
	}
}

// Emit builds the underlying sink if needed and delegates to it.
func (c *CachedSink) Emit(severity Severity, message string, fields Fields) error {
	sink, err := c.get()
	if err != nil {
		return err
	}

	return sink.Emit(severity, message, fields)
}

// Sync flushes the underlying sink. It does nothing before the first Emit.
func (c *CachedSink) Sync() error {
	if !c.ready.Load() || c.sink == nil {
		return nil
	}

	return syncSink(c.sink)
}

// get runs the factory once and returns its result.
//
//nolint:ireturn,nolintlint // Returns whatever the factory produced.
func (c *CachedSink) get() (Sink, error) {
	c.once.Do(func() {
		defer c.ready.Store(true)

		if c.factory == nil {
			c.err = errNoSinkFactory

			return
		}

		c.sink, c.err = c.factory()
		if c.err == nil && c.sink == nil {
			c.err = errNilSink
		}
	})

	return c.sink, c.err
}

// syncSink flushes s when it supports flushing.
func syncSink(s Sink) error {
	if syncer, ok := s.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}

	return nil
}
