package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bwhmather/hayward/internal/log"
)

// Server accepts connections on a Unix socket and broadcasts Events to
// every connected client as newline-delimited JSON (adapted from the
// teacher's niri event-stream framing, server side instead of client
// side).
type Server struct {
	path     string
	listener net.Listener

	mu      sync.Mutex
	clients map[net.Conn]chan Event

	commands CommandTable
}

func NewServer(path string, commands CommandTable) *Server {
	return &Server{path: path, clients: make(map[net.Conn]chan Event), commands: commands}
}

// SetCommands replaces the dispatch table, letting callers build it after
// constructing the server when the handlers need a reference back to the
// server itself (e.g. to broadcast events from within a handler).
func (s *Server) SetCommands(commands CommandTable) {
	s.commands = commands
}

// Listen creates the socket, removing any stale file left by a prior
// instance.
func (s *Server) Listen() error {
	_ = os.Remove(s.path)
	l, err := net.Listen("unix", s.path)
	if err != nil {
		return err
	}
	s.listener = l
	return nil
}

// Serve accepts connections until ctx is cancelled, running each
// connection's read/write loops under an errgroup so a single client's
// failure doesn't take down the others or leak goroutines.
func (s *Server) Serve(ctx context.Context) error {
	defer s.listener.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return s.listener.Close()
	})

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return g.Wait()
			default:
				return err
			}
		}
		g.Go(func() error {
			s.handleConn(ctx, conn)
			return nil
		})
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	events := make(chan Event, 64)
	s.mu.Lock()
	s.clients[conn] = events
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		close(events)
		s.mu.Unlock()
	}()

	go s.writeLoop(conn, events)
	s.readLoop(ctx, conn)
}

func (s *Server) writeLoop(conn net.Conn, events chan Event) {
	enc := json.NewEncoder(conn)
	for ev := range events {
		if err := enc.Encode(ev); err != nil {
			log.Debugf("ipc: write to client failed: %v", err)
			return
		}
	}
}

// readLoop decodes one command per line and dispatches it through the
// command table, writing back its result as a JSON line (the action-socket
// half of the teacher's two-socket niri pattern, collapsed onto one
// connection since our commands and events don't collide).
func (s *Server) readLoop(ctx context.Context, conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	enc := json.NewEncoder(conn)
	for scanner.Scan() {
		var args []string
		if err := json.Unmarshal(scanner.Bytes(), &args); err != nil {
			enc.Encode(Reply{Status: StatusInvalid, Error: err.Error()})
			continue
		}
		reply := s.commands.Dispatch(ctx, args)
		enc.Encode(reply)
	}
}

// Broadcast queues ev for delivery to every currently connected client.
// Slow clients are dropped rather than allowed to block the core.
func (s *Server) Broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		select {
		case ch <- ev:
		default:
			log.Warnf("ipc: client backpressured, dropping connection")
			conn.Close()
		}
	}
}

func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
