package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Balance returns the funds of one address, or of the whole container when
// address is empty.
func (c *Client) Balance(ctx context.Context, address string) (*Balance, error) {
	path := "/balance"
	if address != "" {
		path += "/" + url.PathEscape(address)
	}
	var resp balanceResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if resp.Address == "" {
		resp.Address = address
	}
	return c.responseToBalance(&resp)
}

// Balances returns the funds of every address in the container.
func (c *Client) Balances(ctx context.Context) ([]Balance, error) {
	var resps []balanceResponse
	if err := c.get(ctx, "/balances", &resps); err != nil {
		return nil, err
	}
	balances := make([]Balance, len(resps))
	for i := range resps {
		b, err := c.responseToBalance(&resps[i])
		if err != nil {
			return nil, fmt.Errorf("address %s: %w", resps[i].Address, err)
		}
		balances[i] = *b
	}
	return balances, nil
}

type transactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

func (c *Client) getTransactions(ctx context.Context, path string) ([]*Transaction, error) {
	var resp transactionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return c.responseToTransactions(resp.Transactions)
}

// Transactions returns every transaction in the container.
func (c *Client) Transactions(ctx context.Context) ([]*Transaction, error) {
	return c.getTransactions(ctx, "/transactions")
}

// TransactionsInRange returns transactions between startHeight and
// endHeight. A nil endHeight leaves the range open-ended.
func (c *Client) TransactionsInRange(ctx context.Context, startHeight uint64, endHeight *uint64) ([]*Transaction, error) {
	path := "/transactions/" + strconv.FormatUint(startHeight, 10)
	if endHeight != nil {
		path += "/" + strconv.FormatUint(*endHeight, 10)
	}
	return c.getTransactions(ctx, path)
}

// TransactionsByAddress returns transactions belonging to one address,
// starting at startHeight. A nil endHeight leaves the range open-ended.
func (c *Client) TransactionsByAddress(ctx context.Context, address string, startHeight uint64, endHeight *uint64) ([]*Transaction, error) {
	if address == "" {
		return nil, missingParam("address")
	}
	path := "/transactions/address/" + url.PathEscape(address) + "/" + strconv.FormatUint(startHeight, 10)
	if endHeight != nil {
		path += "/" + strconv.FormatUint(*endHeight, 10)
	}
	return c.getTransactions(ctx, path)
}

// UnconfirmedTransactions returns transactions still in the pool, filtered
// to one address when address is non-empty.
func (c *Client) UnconfirmedTransactions(ctx context.Context, address string) ([]*Transaction, error) {
	path := "/transactions/unconfirmed"
	if address != "" {
		path += "/" + url.PathEscape(address)
	}
	return c.getTransactions(ctx, path)
}

// TransactionByHash returns one transaction.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (*Transaction, error) {
	if hash == "" {
		return nil, missingParam("hash")
	}
	var resp struct {
		Transaction transactionResponse `json:"transaction"`
	}
	if err := c.get(ctx, "/transactions/hash/"+url.PathEscape(hash), &resp); err != nil {
		return nil, err
	}
	return c.responseToTransaction(&resp.Transaction)
}

// TransactionPrivateKey returns the private key of a transaction sent by
// this container, usable for payment proofs.
func (c *Client) TransactionPrivateKey(ctx context.Context, hash string) (string, error) {
	if hash == "" {
		return "", missingParam("hash")
	}
	var resp struct {
		TransactionPrivateKey string `json:"transactionPrivateKey"`
	}
	if err := c.get(ctx, "/transactions/privatekey/"+url.PathEscape(hash), &resp); err != nil {
		return "", err
	}
	return resp.TransactionPrivateKey, nil
}

type sendBasicRequest struct {
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
	PaymentID   string `json:"paymentID,omitempty"`
}

type transactionHashResponse struct {
	TransactionHash string `json:"transactionHash"`
}

// SendBasic sends amount (display units) to address with network-default
// parameters and returns the transaction hash. paymentID may be empty.
func (c *Client) SendBasic(ctx context.Context, address string, amount decimal.Decimal, paymentID string) (string, error) {
	if address == "" {
		return "", missingParam("address")
	}
	if amount.Sign() <= 0 {
		return "", &ValidationError{Param: "amount", Reason: "must be positive"}
	}
	var resp transactionHashResponse
	err := c.post(ctx, "/transactions/send/basic", sendBasicRequest{
		Destination: address,
		Amount:      c.atomicFromDecimal(amount),
		PaymentID:   paymentID,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.TransactionHash, nil
}

// SendOptions are the optional knobs of SendAdvanced. Nil pointer fields
// fall back to the client's configured defaults, so a literal zero is
// honored when given.
type SendOptions struct {
	Mixin           *uint64
	Fee             *decimal.Decimal // display units
	SourceAddresses []string
	PaymentID       string
	ChangeAddress   string
	UnlockTime      *uint64
}

type sendAdvancedRequest struct {
	Destinations    []Destination `json:"destinations"`
	Mixin           *uint64       `json:"mixin,omitempty"`
	Fee             int64         `json:"fee"`
	SourceAddresses []string      `json:"sourceAddresses,omitempty"`
	PaymentID       string        `json:"paymentID,omitempty"`
	ChangeAddress   string        `json:"changeAddress,omitempty"`
	UnlockTime      uint64        `json:"unlockTime"`
}

// SendAdvanced sends to multiple destinations with explicit control over
// mixin, fee, source addresses, payment ID, change address and unlock time.
// opts may be nil. Returns the transaction hash.
func (c *Client) SendAdvanced(ctx context.Context, destinations []Destination, opts *SendOptions) (string, error) {
	if len(destinations) == 0 {
		return "", missingParam("destinations")
	}
	for i, d := range destinations {
		if d.Address == "" {
			return "", &ValidationError{
				Param:  "destinations",
				Reason: fmt.Sprintf("entry %d has no address", i),
			}
		}
		if d.Amount <= 0 {
			return "", &ValidationError{
				Param:  "destinations",
				Reason: fmt.Sprintf("entry %d has no amount", i),
			}
		}
	}
	if opts == nil {
		opts = &SendOptions{}
	}

	mixin := opts.Mixin
	if mixin == nil {
		mixin = c.defaultMixin
	}
	fee := c.defaultFee
	if opts.Fee != nil {
		fee = *opts.Fee
	}
	unlockTime := c.defaultUnlockTime
	if opts.UnlockTime != nil {
		unlockTime = *opts.UnlockTime
	}

	var resp transactionHashResponse
	err := c.post(ctx, "/transactions/send/advanced", sendAdvancedRequest{
		Destinations:    destinations,
		Mixin:           mixin,
		Fee:             c.atomicFromDecimal(fee),
		SourceAddresses: opts.SourceAddresses,
		PaymentID:       opts.PaymentID,
		ChangeAddress:   opts.ChangeAddress,
		UnlockTime:      unlockTime,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.TransactionHash, nil
}

// SendFusionBasic sends a fusion transaction with network-default
// parameters, consolidating the container's outputs. Returns the
// transaction hash.
func (c *Client) SendFusionBasic(ctx context.Context) (string, error) {
	var resp transactionHashResponse
	if err := c.post(ctx, "/transactions/send/fusion/basic", nil, &resp); err != nil {
		return "", err
	}
	return resp.TransactionHash, nil
}

// FusionOptions are the optional knobs of SendFusionAdvanced.
type FusionOptions struct {
	Mixin           *uint64
	SourceAddresses []string
}

type sendFusionRequest struct {
	Destination     string   `json:"destination"`
	Mixin           *uint64  `json:"mixin,omitempty"`
	SourceAddresses []string `json:"sourceAddresses,omitempty"`
}

// SendFusionAdvanced sends a fusion transaction whose consolidated outputs
// land on address. opts may be nil. Returns the transaction hash.
func (c *Client) SendFusionAdvanced(ctx context.Context, address string, opts *FusionOptions) (string, error) {
	if address == "" {
		return "", missingParam("address")
	}
	if opts == nil {
		opts = &FusionOptions{}
	}
	var resp transactionHashResponse
	err := c.post(ctx, "/transactions/send/fusion/advanced", sendFusionRequest{
		Destination:     address,
		Mixin:           opts.Mixin,
		SourceAddresses: opts.SourceAddresses,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.TransactionHash, nil
}
