// Package server is a small HTTP-like service used as parser input.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// ErrClosed is returned once the server has shut down.
var ErrClosed = errors.New("server closed")

type Handler interface {
	Serve(ctx context.Context, req *Request) (*Response, error)
}

type HandlerFunc func(context.Context, *Request) (*Response, error)

func (f HandlerFunc) Serve(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

type Request struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header,omitempty"`
	Body   io.Reader
}

type Response struct {
	Status int
	Body   []byte
}

type Server struct {
	sync.Mutex
	addr     string
	routes   map[string]Handler
	closed   bool
	inflight sync.WaitGroup
	timeout  time.Duration
}

var _ Handler = HandlerFunc(nil)

func New(addr string, timeout time.Duration) *Server {
	return &Server{
		addr:    addr,
		routes:  make(map[string]Handler),
		timeout: timeout,
	}
}

func (s *Server) Handle(path string, h Handler) {
	s.Lock()
	defer s.Unlock()
	s.routes[path] = h
}

func (s *Server) Dispatch(req *Request) (resp *Response, err error) {
	s.Lock()
	if s.closed {
		s.Unlock()
		return nil, ErrClosed
	}
	h, ok := s.routes[req.Path]
	s.Unlock()
	if !ok {
		return &Response{Status: 404, Body: []byte("not found\n")}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout*2)
	defer cancel()

	s.inflight.Add(1)
	defer s.inflight.Done()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler for %s panicked: %v", req.Path, r)
		}
	}()

	done := make(chan struct{})
	go func() {
		resp, err = h.Serve(ctx, req)
		close(done)
	}()

	select {
	case <-done:
		return resp, err
	case <-ctx.Done():
		return nil, fmt.Errorf("dispatch %s: %w", req.Path, ctx.Err())
	}
}

func (s *Server) Close() error {
	s.Lock()
	if s.closed {
		s.Unlock()
		return ErrClosed
	}
	s.closed = true
	s.Unlock()
	s.inflight.Wait()
	return nil
}

func worker(id int, jobs <-chan *Request, results chan<- *Response, s *Server) {
	for req := range jobs {
		resp, err := s.Dispatch(req)
		if err != nil {
			resp = &Response{Status: 500, Body: []byte(err.Error())}
		}
		results <- resp
	}
}

func Pool(s *Server, n int, reqs []*Request) []*Response {
	jobs := make(chan *Request, len(reqs))
	results := make(chan *Response, len(reqs))
	for i := 0; i < n; i++ {
		go worker(i, jobs, results, s)
	}
	for _, r := range reqs {
		jobs <- r
	}
	close(jobs)

	out := make([]*Response, 0, len(reqs))
	for range reqs {
		out = append(out, <-results)
	}
	return out
}
