package client

import "context"

// Node returns the daemon node the wallet is currently connected to.
func (c *Client) Node(ctx context.Context) (*NodeInfo, error) {
	var resp NodeInfo
	if err := c.get(ctx, "/node", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type setNodeRequest struct {
	DaemonHost string `json:"daemonHost,omitempty"`
	DaemonPort *int   `json:"daemonPort,omitempty"`
	DaemonSSL  *bool  `json:"daemonSSL,omitempty"`
}

// SetNode swaps the wallet onto a different daemon node. At least one of
// host and port must be given; empty fields are left unchanged on the
// daemon and omitted from the payload. ssl may be nil.
func (c *Client) SetNode(ctx context.Context, host string, port int, ssl *bool) error {
	if host == "" && port == 0 {
		return &ValidationError{
			Param:  "host/port",
			Reason: "at least one of daemon host and port is required",
		}
	}
	req := setNodeRequest{DaemonHost: host, DaemonSSL: ssl}
	if port != 0 {
		req.DaemonPort = &port
	}
	return c.put(ctx, "/node", req)
}

// Status reports the wallet's sync progress against the network.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var resp Status
	if err := c.get(ctx, "/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
