package sessioncipher

import (
	"net"
	"sync"

	"github.com/golang/glog"
)

// Conn is an established connection whose traffic runs through a Cipher in
// both directions. A failed Write leaves the outgoing stream out of sync;
// the connection should be dropped.
type Conn struct {
	net.Conn
	c *Cipher

	rmu sync.Mutex

	wmu  sync.Mutex
	wbuf []byte
}

// NewConn returns c wrapped with a Cipher keyed by sessionKey.
func NewConn(c net.Conn, sessionKey []byte) (*Conn, error) {
	ci, err := New(sessionKey)
	if err != nil {
		return nil, err
	}
	return &Conn{Conn: c, c: ci}, nil
}

func (c *Conn) Read(b []byte) (int, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()
	n, err := c.Conn.Read(b)
	if n > 0 {
		c.c.Decrypt(b[:n], b[:n])
		glog.V(2).Infof("sessioncipher: read %d bytes", n)
	}
	return n, err
}

func (c *Conn) Write(b []byte) (int, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if cap(c.wbuf) < len(b) {
		c.wbuf = make([]byte, len(b))
	}
	buf := c.wbuf[:len(b)]
	c.c.Encrypt(buf, b)
	n, err := c.Conn.Write(buf)
	glog.V(2).Infof("sessioncipher: wrote %d of %d bytes, %v", n, len(b), err)
	return n, err
}
