package plugin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"

	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"golang.org/x/sync/errgroup"
)

// Server expands the requests read from a stream, answering each with a
// response carrying the same ID. Responses are written in completion order.
type Server struct {
	expander *expansion.Expander
	codec    Codec
	workers  int
	logger   *log.Logger
}

// NewServer creates a server running at most workers expansions at once. A
// non positive count selects one worker per CPU.
func NewServer(expander *expansion.Expander, codec Codec, workers int, logger *log.Logger) *Server {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{
		expander: expander,
		codec:    codec,
		workers:  workers,
		logger:   logger,
	}
}

// Handle expands a single request.
func (s *Server) Handle(req Request) Response {
	site, err := req.site()
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}

	g, err := s.expander.Expand(site)
	if err != nil {
		var d *diagnostic.Diagnostic
		if errors.As(err, &d) {
			return diagnosticResponse(req.ID, d)
		}
		return Response{ID: req.ID, Error: err.Error()}
	}
	return syntaxResponse(req.ID, g)
}

// Serve reads requests from r until the end of input or until ctx is done,
// and writes responses to w. It returns once every accepted request has been
// answered. A read still blocked on r when ctx is done is abandoned; it ends
// when r is closed.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	out := newResponseWriter(s.codec, w)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	done := make(chan struct{})
	defer close(done)
	frames := s.readFrames(r, done)

	var readErr error
	for ctx.Err() == nil {
		var f frame
		select {
		case <-ctx.Done():
			return errors.Join(readErr, g.Wait())
		case f = <-frames:
		}

		if f.err != nil {
			if !errors.Is(f.err, io.EOF) {
				readErr = fmt.Errorf("decoding request: %w", f.err)
			}
			break
		}

		req := f.req
		s.logger.Printf("request %d: %s", req.ID, req.Rule)
		g.Go(func() error {
			return out.write(s.Handle(req))
		})
	}

	return errors.Join(readErr, g.Wait())
}

// frame is one decoded request, or the error that ended the input.
type frame struct {
	req Request
	err error
}

// readFrames decodes requests from r until the first error, which is sent
// last. It stops early once done is closed.
func (s *Server) readFrames(r io.Reader, done <-chan struct{}) <-chan frame {
	dec := s.codec.NewDecoder(bufio.NewReader(r))
	frames := make(chan frame)

	go func() {
		for {
			var f frame
			f.err = dec.Decode(&f.req)
			select {
			case frames <- f:
			case <-done:
				return
			}
			if f.err != nil {
				return
			}
		}
	}()

	return frames
}

// responseWriter serializes concurrent responses onto one stream.
type responseWriter struct {
	mu  sync.Mutex
	buf *bufio.Writer
	enc Encoder
}

func newResponseWriter(codec Codec, w io.Writer) *responseWriter {
	buf := bufio.NewWriter(w)
	return &responseWriter{buf: buf, enc: codec.NewEncoder(buf)}
}

func (rw *responseWriter) write(resp Response) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if err := rw.enc.Encode(resp); err != nil {
		return fmt.Errorf("encoding response %d: %w", resp.ID, err)
	}
	return rw.buf.Flush()
}
