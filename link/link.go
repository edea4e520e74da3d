// Package link owns the serial connection to the receiver: opening the
// device exclusively, feeding inbound bytes into a ring buffer on a
// background goroutine, and writing outbound frames.
package link

import (
	"io"
	"os"
	"sync"

	"github.com/tarm/serial"
	"golang.org/x/sys/unix"

	"gnssdrv.dev/ring"
)

// Link is an open serial connection together with the goroutine draining
// it into a byte ring.
type Link struct {
	path string
	baud int

	mu      sync.Mutex
	port    io.ReadWriteCloser
	exclBy  *os.File
	closeCh chan struct{}
}

// Open opens path at baud, claims it exclusively via TIOCEXCL, and
// starts draining inbound bytes into ring on a background goroutine.
func Open(path string, baud int, r *ring.Ring) (*Link, error) {
	excl, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	if err := unix.IoctlSetInt(int(excl.Fd()), unix.TIOCEXCL, 0); err != nil {
		excl.Close()
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{Name: path, Baud: baud})
	if err != nil {
		excl.Close()
		return nil, err
	}

	l := &Link{
		path:    path,
		baud:    baud,
		port:    port,
		exclBy:  excl,
		closeCh: make(chan struct{}),
	}
	go l.drain(r)
	return l, nil
}

// newForTest builds a Link around an already-open port, bypassing the
// real device and TIOCEXCL handling.
func newForTest(port io.ReadWriteCloser, r *ring.Ring) *Link {
	l := &Link{port: port, closeCh: make(chan struct{})}
	go l.drain(r)
	return l
}

func (l *Link) drain(r *ring.Ring) {
	buf := make([]byte, 256)
	for {
		select {
		case <-l.closeCh:
			return
		default:
		}
		l.mu.Lock()
		port := l.port
		l.mu.Unlock()
		if port == nil {
			return
		}
		n, err := port.Read(buf)
		if n > 0 {
			r.Append(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// Write sends a frame to the receiver.
func (l *Link) Write(frame []byte) error {
	l.mu.Lock()
	port := l.port
	l.mu.Unlock()
	if port == nil {
		return io.ErrClosedPipe
	}
	_, err := port.Write(frame)
	return err
}

// Reconnect closes and reopens the underlying port at the same path and
// baud rate, restarting the drain goroutine. It does not replace the
// ring: inbound bytes keep flowing into the same one.
func (l *Link) Reconnect(r *ring.Ring) error {
	l.mu.Lock()
	if l.port != nil {
		l.port.Close()
	}
	if l.exclBy != nil {
		l.exclBy.Close()
	}
	l.mu.Unlock()
	close(l.closeCh)

	excl, err := os.OpenFile(l.path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	if err := unix.IoctlSetInt(int(excl.Fd()), unix.TIOCEXCL, 0); err != nil {
		excl.Close()
		return err
	}
	port, err := serial.OpenPort(&serial.Config{Name: l.path, Baud: l.baud})
	if err != nil {
		excl.Close()
		return err
	}

	l.mu.Lock()
	l.port = port
	l.exclBy = excl
	l.closeCh = make(chan struct{})
	l.mu.Unlock()
	go l.drain(r)
	return nil
}

// Close shuts down the drain goroutine and the underlying port.
func (l *Link) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	close(l.closeCh)
	if l.exclBy != nil {
		l.exclBy.Close()
		l.exclBy = nil
	}
	if port := l.port; port != nil {
		l.port = nil
		return port.Close()
	}
	return nil
}
