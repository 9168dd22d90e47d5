package panel

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// MaxMessageSize is the largest accepted request line.
const MaxMessageSize = 8 * 1024 * 1024

// Session exchanges line-delimited JSON messages with a panel.
type Session struct {
	handler *Handler
	in      io.Reader
	out     io.Writer
	logger  hclog.Logger
}

// NewSession returns a session reading requests from in and writing replies to out.
func NewSession(h *Handler, in io.Reader, out io.Writer, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Session{handler: h, in: in, out: out, logger: logger}
}

type line struct {
	data []byte
	err  error
}

// Run serves requests until a close message, end of input or cancellation
// of ctx. Messages that cannot be decoded are answered with an error reply.
// A reader blocked on input is abandoned when ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan line)
	go s.read(ctx, lines)

	for {
		var next line
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				s.logger.Debug("panel input closed")
				return nil
			}
			next = l
		}
		if next.err != nil {
			return fmt.Errorf("failed to read message: %w", next.err)
		}

		req, err := DecodeRequest(next.data)
		if err != nil {
			s.logger.Warn("rejected message", "error", err)
			if err := s.send(Error{Message: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if _, ok := req.(Close); ok {
			s.logger.Debug("panel closed session")
			return nil
		}

		if reply := s.handler.Handle(ctx, req); reply != nil {
			if err := s.send(reply); err != nil {
				return err
			}
		}
	}
}

func (s *Session) read(ctx context.Context, lines chan<- line) {
	defer close(lines)

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxMessageSize)
	for scanner.Scan() {
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		select {
		case lines <- line{data: bytes.Clone(data)}:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case lines <- line{err: err}:
		case <-ctx.Done():
		}
	}
}

func (s *Session) send(r Reply) error {
	data, err := EncodeReply(r)
	if err != nil {
		return err
	}
	s.logger.Debug("sending reply", "type", r.ReplyType())
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}
	return nil
}
