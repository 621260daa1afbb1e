package client

import (
	"context"
	"net/url"
)

// Addresses lists every address in the open wallet container.
func (c *Client) Addresses(ctx context.Context) ([]string, error) {
	var resp struct {
		Addresses []string `json:"addresses"`
	}
	if err := c.get(ctx, "/addresses", &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// PrimaryAddress returns the container's primary address.
func (c *Client) PrimaryAddress(ctx context.Context) (string, error) {
	var resp struct {
		Address string `json:"address"`
	}
	if err := c.get(ctx, "/addresses/primary", &resp); err != nil {
		return "", err
	}
	return resp.Address, nil
}

// CreateAddress adds a new subwallet address to the container.
func (c *Client) CreateAddress(ctx context.Context) (*CreatedAddress, error) {
	var resp CreatedAddress
	if err := c.post(ctx, "/addresses/create", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAddress removes a subwallet address from the container.
func (c *Client) DeleteAddress(ctx context.Context, address string) error {
	if address == "" {
		return missingParam("address")
	}
	return c.del(ctx, "/addresses/"+url.PathEscape(address))
}

// CreateIntegratedAddress combines an address and a payment ID into an
// integrated address.
func (c *Client) CreateIntegratedAddress(ctx context.Context, address, paymentID string) (string, error) {
	if address == "" {
		return "", missingParam("address")
	}
	if paymentID == "" {
		return "", missingParam("paymentID")
	}
	var resp struct {
		IntegratedAddress string `json:"integratedAddress"`
	}
	path := "/addresses/" + url.PathEscape(address) + "/" + url.PathEscape(paymentID)
	if err := c.get(ctx, path, &resp); err != nil {
		return "", err
	}
	return resp.IntegratedAddress, nil
}

type importAddressRequest struct {
	PrivateSpendKey string `json:"privateSpendKey"`
	ScanHeight      uint64 `json:"scanHeight"`
}

// ImportAddress imports a subwallet address from its private spend key and
// returns the resulting address.
func (c *Client) ImportAddress(ctx context.Context, privateSpendKey string, scanHeight uint64) (string, error) {
	if privateSpendKey == "" {
		return "", missingParam("privateSpendKey")
	}
	var resp struct {
		Address string `json:"address"`
	}
	err := c.post(ctx, "/addresses/import", importAddressRequest{
		PrivateSpendKey: privateSpendKey,
		ScanHeight:      scanHeight,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Address, nil
}

type importViewAddressRequest struct {
	PublicSpendKey string `json:"publicSpendKey"`
	ScanHeight     uint64 `json:"scanHeight"`
}

// ImportViewAddress imports a view-only subwallet address from its public
// spend key and returns the resulting address.
func (c *Client) ImportViewAddress(ctx context.Context, publicSpendKey string, scanHeight uint64) (string, error) {
	if publicSpendKey == "" {
		return "", missingParam("publicSpendKey")
	}
	var resp struct {
		Address string `json:"address"`
	}
	err := c.post(ctx, "/addresses/import/view", importViewAddressRequest{
		PublicSpendKey: publicSpendKey,
		ScanHeight:     scanHeight,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Address, nil
}

// ValidateAddress asks the daemon whether an address is well formed and
// returns its decomposition.
func (c *Client) ValidateAddress(ctx context.Context, address string) (*AddressValidation, error) {
	if address == "" {
		return nil, missingParam("address")
	}
	body := struct {
		Address string `json:"address"`
	}{Address: address}

	var resp AddressValidation
	if err := c.post(ctx, "/addresses/validate", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Keys returns the keys for one address, or the container's shared private
// view key when address is empty. View-only wallets yield only the view
// key.
func (c *Client) Keys(ctx context.Context, address string) (*WalletKeys, error) {
	path := "/keys"
	if address != "" {
		path += "/" + url.PathEscape(address)
	}
	var resp WalletKeys
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// KeysMnemonic returns the mnemonic seed for an address, when the daemon
// can derive one.
func (c *Client) KeysMnemonic(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", missingParam("address")
	}
	var resp struct {
		MnemonicSeed string `json:"mnemonicSeed"`
	}
	if err := c.get(ctx, "/keys/mnemonic/"+url.PathEscape(address), &resp); err != nil {
		return "", err
	}
	return resp.MnemonicSeed, nil
}
