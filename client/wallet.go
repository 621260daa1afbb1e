package client

import "context"

// WalletParams names a wallet container on the daemon's filesystem and,
// optionally, the daemon node to connect it to. Nil daemon fields are
// omitted from the payload so the daemon keeps its own defaults.
type WalletParams struct {
	Filename   string
	Password   string
	DaemonHost string
	DaemonPort *int
	DaemonSSL  *bool
}

type walletRequest struct {
	DaemonHost string `json:"daemonHost,omitempty"`
	DaemonPort *int   `json:"daemonPort,omitempty"`
	DaemonSSL  *bool  `json:"daemonSSL,omitempty"`
	Filename   string `json:"filename"`
	Password   string `json:"password"`
}

func (p *WalletParams) request() (walletRequest, error) {
	if p.Filename == "" {
		return walletRequest{}, missingParam("filename")
	}
	if p.Password == "" {
		return walletRequest{}, missingParam("password")
	}
	return walletRequest{
		DaemonHost: p.DaemonHost,
		DaemonPort: p.DaemonPort,
		DaemonSSL:  p.DaemonSSL,
		Filename:   p.Filename,
		Password:   p.Password,
	}, nil
}

// Open opens an existing wallet container. The daemon holds at most one
// open container at a time.
func (c *Client) Open(ctx context.Context, params WalletParams) error {
	req, err := params.request()
	if err != nil {
		return err
	}
	return c.post(ctx, "/wallet/open", req, nil)
}

// Create creates and opens a new wallet container.
func (c *Client) Create(ctx context.Context, params WalletParams) error {
	req, err := params.request()
	if err != nil {
		return err
	}
	return c.post(ctx, "/wallet/create", req, nil)
}

// Close saves and closes the open wallet container.
func (c *Client) Close(ctx context.Context) error {
	return c.del(ctx, "/wallet")
}

// Save writes the open wallet container to disk.
func (c *Client) Save(ctx context.Context) error {
	return c.put(ctx, "/save", nil)
}

type resetRequest struct {
	ScanHeight uint64 `json:"scanHeight"`
}

// Reset discards local sync state and rescans the chain from scanHeight.
func (c *Client) Reset(ctx context.Context, scanHeight uint64) error {
	return c.put(ctx, "/reset", resetRequest{ScanHeight: scanHeight})
}

// ImportKeyParams holds the keys for importing a wallet container from its
// private view and spend keys.
type ImportKeyParams struct {
	Filename        string
	Password        string
	PrivateViewKey  string
	PrivateSpendKey string
	ScanHeight      uint64
	DaemonHost      string
	DaemonPort      *int
	DaemonSSL       *bool
}

type importKeyRequest struct {
	DaemonHost      string `json:"daemonHost,omitempty"`
	DaemonPort      *int   `json:"daemonPort,omitempty"`
	DaemonSSL       *bool  `json:"daemonSSL,omitempty"`
	Filename        string `json:"filename"`
	Password        string `json:"password"`
	PrivateViewKey  string `json:"privateViewKey"`
	PrivateSpendKey string `json:"privateSpendKey"`
	ScanHeight      uint64 `json:"scanHeight"`
}

// ImportKey creates a new wallet container from a private view/spend key
// pair and opens it.
func (c *Client) ImportKey(ctx context.Context, params ImportKeyParams) error {
	switch {
	case params.Filename == "":
		return missingParam("filename")
	case params.Password == "":
		return missingParam("password")
	case params.PrivateViewKey == "":
		return missingParam("privateViewKey")
	case params.PrivateSpendKey == "":
		return missingParam("privateSpendKey")
	}
	return c.post(ctx, "/wallet/import/key", importKeyRequest{
		DaemonHost:      params.DaemonHost,
		DaemonPort:      params.DaemonPort,
		DaemonSSL:       params.DaemonSSL,
		Filename:        params.Filename,
		Password:        params.Password,
		PrivateViewKey:  params.PrivateViewKey,
		PrivateSpendKey: params.PrivateSpendKey,
		ScanHeight:      params.ScanHeight,
	}, nil)
}

// ImportSeedParams holds the mnemonic for importing a wallet container.
type ImportSeedParams struct {
	Filename     string
	Password     string
	MnemonicSeed string
	ScanHeight   uint64
	DaemonHost   string
	DaemonPort   *int
	DaemonSSL    *bool
}

type importSeedRequest struct {
	DaemonHost   string `json:"daemonHost,omitempty"`
	DaemonPort   *int   `json:"daemonPort,omitempty"`
	DaemonSSL    *bool  `json:"daemonSSL,omitempty"`
	Filename     string `json:"filename"`
	Password     string `json:"password"`
	MnemonicSeed string `json:"mnemonicSeed"`
	ScanHeight   uint64 `json:"scanHeight"`
}

// ImportSeed creates a new wallet container from a mnemonic seed and opens
// it.
func (c *Client) ImportSeed(ctx context.Context, params ImportSeedParams) error {
	switch {
	case params.Filename == "":
		return missingParam("filename")
	case params.Password == "":
		return missingParam("password")
	case params.MnemonicSeed == "":
		return missingParam("mnemonicSeed")
	}
	return c.post(ctx, "/wallet/import/seed", importSeedRequest{
		DaemonHost:   params.DaemonHost,
		DaemonPort:   params.DaemonPort,
		DaemonSSL:    params.DaemonSSL,
		Filename:     params.Filename,
		Password:     params.Password,
		MnemonicSeed: params.MnemonicSeed,
		ScanHeight:   params.ScanHeight,
	}, nil)
}

// ImportViewOnlyParams holds the view key and public address for importing
// a view-only wallet container.
type ImportViewOnlyParams struct {
	Filename       string
	Password       string
	PrivateViewKey string
	Address        string
	ScanHeight     uint64
	DaemonHost     string
	DaemonPort     *int
	DaemonSSL      *bool
}

type importViewOnlyRequest struct {
	DaemonHost     string `json:"daemonHost,omitempty"`
	DaemonPort     *int   `json:"daemonPort,omitempty"`
	DaemonSSL      *bool  `json:"daemonSSL,omitempty"`
	Filename       string `json:"filename"`
	Password       string `json:"password"`
	PrivateViewKey string `json:"privateViewKey"`
	Address        string `json:"address"`
	ScanHeight     uint64 `json:"scanHeight"`
}

// ImportViewOnly creates a view-only wallet container, which can observe
// incoming funds but cannot spend.
func (c *Client) ImportViewOnly(ctx context.Context, params ImportViewOnlyParams) error {
	switch {
	case params.Filename == "":
		return missingParam("filename")
	case params.Password == "":
		return missingParam("password")
	case params.PrivateViewKey == "":
		return missingParam("privateViewKey")
	case params.Address == "":
		return missingParam("address")
	}
	return c.post(ctx, "/wallet/import/view", importViewOnlyRequest{
		DaemonHost:     params.DaemonHost,
		DaemonPort:     params.DaemonPort,
		DaemonSSL:      params.DaemonSSL,
		Filename:       params.Filename,
		Password:       params.Password,
		PrivateViewKey: params.PrivateViewKey,
		Address:        params.Address,
		ScanHeight:     params.ScanHeight,
	}, nil)
}
