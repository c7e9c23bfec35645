package live

import (
	"bufio"
	"log"
	"net"
	"sync"
)

// Server accepts raw TCP clients for the event feed. Clients are
// write-only from the hub's perspective; anything they send is drained
// and ignored.
type Server struct {
	Addr string
	Hub  *Hub

	mu sync.Mutex
	ln net.Listener
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{Addr: addr, Hub: hub}
}

func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	log.Printf("[live] listening on %s", s.Addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			// listener closed
			return nil
		}

		s.Hub.Add(conn)
		s.Hub.Welcome(conn)
		log.Printf("[live] client connected: %s", conn.RemoteAddr())

		go func(c net.Conn) {
			defer func() {
				s.Hub.Remove(c)
				log.Printf("[live] client disconnected: %s", c.RemoteAddr())
			}()

			sc := bufio.NewScanner(c)
			for sc.Scan() {
			}
		}(conn)
	}
}

// Close stops accepting new clients. Existing connections are closed by
// the hub as writes fail.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}
