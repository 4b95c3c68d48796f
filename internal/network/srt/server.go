package srt

import (
	"context"
	"sort"
	"sync"

	gosrt "github.com/datarhei/gosrt"

	"codeberg.org/mutker/netdiag/internal/errors"
	"codeberg.org/mutker/netdiag/internal/logger"
	"codeberg.org/mutker/netdiag/internal/network"
)

// readBufferSize fits one SRT payload.
const readBufferSize = 1500

// acceptor yields established connections until it is closed.
type acceptor interface {
	Accept() (Conn, error)
	Close()
}

type listenerAcceptor struct {
	ln  gosrt.Listener
	log logger.Logger
}

// Accept waits for the next connection request and accepts it. Requests
// that fail the handshake are logged and skipped.
func (a *listenerAcceptor) Accept() (Conn, error) {
	for {
		req, err := a.ln.Accept2()
		if err != nil {
			return nil, err
		}
		conn, err := req.Accept()
		if err != nil {
			a.log.Debug().
				Err(err).
				Str("remote", req.RemoteAddr().String()).
				Msg("Rejected SRT connection request")
			continue
		}
		return conn, nil
	}
}

func (a *listenerAcceptor) Close() {
	a.ln.Close()
}

// Server accepts SRT connections and tracks them by socket id. Connections
// are drained and forgotten when the peer goes away.
type Server struct {
	acc acceptor
	log logger.Logger

	mu     sync.RWMutex
	conns  map[uint64]Conn
	closed bool

	wg sync.WaitGroup
}

var _ network.Server = (*Server)(nil)

// Listen opens an SRT listener on address. Call Serve to start accepting.
func Listen(address string, cfg gosrt.Config, log logger.Logger) (*Server, error) {
	ln, err := gosrt.Listen("srt", address, cfg)
	if err != nil {
		return nil, errors.New().WithData(ErrListenFailed, struct {
			Address string
			Error   string
		}{
			Address: address,
			Error:   err.Error(),
		})
	}

	log.Info().Str("address", address).Msg("SRT listener started")

	return newServer(&listenerAcceptor{ln: ln, log: log}, log), nil
}

func newServer(acc acceptor, log logger.Logger) *Server {
	return &Server{
		acc:   acc,
		log:   log,
		conns: make(map[uint64]Conn),
	}
}

// Serve accepts connections until ctx is done or the listener fails. On
// return every tracked connection has been closed.
func (s *Server) Serve(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.shutdown()
		case <-stop:
		}
	}()

	defer s.shutdown()

	for {
		conn, err := s.acc.Accept()
		if err != nil {
			if s.isClosed() {
				return nil
			}
			return errors.New().Wrap(ErrAcceptFailed, err)
		}
		s.add(conn)
	}
}

func (s *Server) add(conn Conn) {
	id := uint64(conn.SocketId())

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.conns[id] = conn
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Debug().Uint64("client_id", id).Msg("SRT client connected")

	go s.drain(id, conn)
}

// drain discards the incoming stream until the connection ends.
func (s *Server) drain(id uint64, conn Conn) {
	defer s.wg.Done()

	buf := make([]byte, readBufferSize)
	for {
		if _, err := conn.Read(buf); err != nil {
			break
		}
	}

	s.mu.Lock()
	if s.conns[id] == conn {
		delete(s.conns, id)
	}
	s.mu.Unlock()

	conn.Close()
	s.log.Debug().Uint64("client_id", id).Msg("SRT client disconnected")
}

// shutdown closes the listener and every connection, then waits for the
// drain goroutines. It is safe to call more than once.
func (s *Server) shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.wg.Wait()
		return
	}
	s.closed = true
	conns := make([]Conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	s.acc.Close()
	for _, c := range conns {
		c.Close()
	}
	s.wg.Wait()
}

func (s *Server) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// ClientIDs returns the ids of the connected clients in ascending order.
func (s *Server) ClientIDs() []uint64 {
	s.mu.RLock()
	ids := make([]uint64, 0, len(s.conns))
	for id := range s.conns {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NetworkInfo returns the statistics of the given client's connection.
func (s *Server) NetworkInfo(clientID uint64) (network.Info, bool) {
	s.mu.RLock()
	conn, ok := s.conns[clientID]
	s.mu.RUnlock()
	if !ok {
		return network.Info{}, false
	}

	var st gosrt.Statistics
	conn.Stats(&st)
	return infoFromStats(&st, receiving), true
}
