package srt

import (
	gosrt "github.com/datarhei/gosrt"

	"codeberg.org/mutker/netdiag/internal/errors"
	"codeberg.org/mutker/netdiag/internal/network"
)

// Client is a single SRT caller connection.
type Client struct {
	conn Conn
}

var _ network.Client = (*Client)(nil)

// Dial connects to an SRT listener at address.
func Dial(address string, cfg gosrt.Config) (*Client, error) {
	conn, err := gosrt.Dial("srt", address, cfg)
	if err != nil {
		return nil, errors.New().WithData(ErrDialFailed, struct {
			Address string
			Error   string
		}{
			Address: address,
			Error:   err.Error(),
		})
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// NetworkInfo returns the connection's current statistics.
func (c *Client) NetworkInfo() network.Info {
	var st gosrt.Statistics
	c.conn.Stats(&st)
	return infoFromStats(&st, sending)
}

func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		return errors.New().Wrap(ErrCloseFailed, err)
	}
	return nil
}
