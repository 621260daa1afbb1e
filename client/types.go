package client

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Destination is one recipient of a transaction. Amount is in atomic units,
// the form the daemon expects; use NewDestination to build one from a
// display-unit amount.
type Destination struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

// Balance holds the funds of one address, or of the whole container when
// Address is empty. Amounts are in display units.
type Balance struct {
	Address  string
	Unlocked decimal.Decimal
	Locked   decimal.Decimal
}

// Transfer is one destination of a recorded transaction, amount in display
// units. Negative amounts are outgoing.
type Transfer struct {
	Address string
	Amount  decimal.Decimal
}

// Transaction is a wallet transaction with fee and transfer amounts in
// display units.
type Transaction struct {
	Hash        string
	Fee         decimal.Decimal
	BlockHeight uint64
	Timestamp   uint64
	PaymentID   string
	UnlockTime  uint64
	IsCoinbase  bool
	Transfers   []Transfer
}

// CreatedAddress is the daemon's record of a freshly created subwallet
// address.
type CreatedAddress struct {
	Address         string `json:"address"`
	PrivateSpendKey string `json:"privateSpendKey"`
	PublicSpendKey  string `json:"publicSpendKey"`
}

// WalletKeys holds the keys of an address. View-only wallets carry only the
// private view key; the spend key fields stay empty.
type WalletKeys struct {
	PublicSpendKey  string `json:"publicSpendKey"`
	PrivateSpendKey string `json:"privateSpendKey"`
	PrivateViewKey  string `json:"privateViewKey"`
}

// NodeInfo describes the daemon node the wallet is connected to.
type NodeInfo struct {
	Host        string `json:"daemonHost"`
	Port        int    `json:"daemonPort"`
	NodeFee     uint64 `json:"nodeFee"`
	NodeAddress string `json:"nodeAddress"`
}

// Status reports the wallet's sync state.
type Status struct {
	WalletBlockCount      uint64 `json:"walletBlockCount"`
	LocalDaemonBlockCount uint64 `json:"localDaemonBlockCount"`
	NetworkBlockCount     uint64 `json:"networkBlockCount"`
	PeerCount             int    `json:"peerCount"`
	Hashrate              uint64 `json:"hashrate"`
	IsViewWallet          bool   `json:"isViewWallet"`
	SubWalletCount        int    `json:"subWalletCount"`
}

// AddressValidation is the daemon's verdict on an address.
type AddressValidation struct {
	IsIntegrated   bool   `json:"isIntegrated"`
	PaymentID      string `json:"paymentID"`
	ActualAddress  string `json:"actualAddress"`
	PublicSpendKey string `json:"publicSpendKey"`
	PublicViewKey  string `json:"publicViewKey"`
}

// Wire shapes. Amounts arrive as atomic-unit JSON numbers and are kept as
// json.Number until converted, so the original representation survives.

type balanceResponse struct {
	Address  string      `json:"address"`
	Unlocked json.Number `json:"unlocked"`
	Locked   json.Number `json:"locked"`
}

func (c *Client) responseToBalance(resp *balanceResponse) (*Balance, error) {
	unlocked, err := c.FromAtomicUnits(resp.Unlocked)
	if err != nil {
		return nil, fmt.Errorf("invalid unlocked balance: %w", err)
	}
	locked, err := c.FromAtomicUnits(resp.Locked)
	if err != nil {
		return nil, fmt.Errorf("invalid locked balance: %w", err)
	}
	return &Balance{
		Address:  resp.Address,
		Unlocked: unlocked,
		Locked:   locked,
	}, nil
}

type transferResponse struct {
	Address string      `json:"address"`
	Amount  json.Number `json:"amount"`
}

type transactionResponse struct {
	Hash        string             `json:"hash"`
	Fee         json.Number        `json:"fee"`
	BlockHeight uint64             `json:"blockHeight"`
	Timestamp   uint64             `json:"timestamp"`
	PaymentID   string             `json:"paymentID"`
	UnlockTime  uint64             `json:"unlockTime"`
	IsCoinbase  bool               `json:"isCoinbase"`
	Transfers   []transferResponse `json:"transfers"`
}

func (c *Client) responseToTransaction(resp *transactionResponse) (*Transaction, error) {
	fee, err := c.FromAtomicUnits(resp.Fee)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: invalid fee: %w", resp.Hash, err)
	}

	transfers := make([]Transfer, len(resp.Transfers))
	for i, t := range resp.Transfers {
		amount, err := c.FromAtomicUnits(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: invalid transfer amount: %w", resp.Hash, err)
		}
		transfers[i] = Transfer{Address: t.Address, Amount: amount}
	}

	return &Transaction{
		Hash:        resp.Hash,
		Fee:         fee,
		BlockHeight: resp.BlockHeight,
		Timestamp:   resp.Timestamp,
		PaymentID:   resp.PaymentID,
		UnlockTime:  resp.UnlockTime,
		IsCoinbase:  resp.IsCoinbase,
		Transfers:   transfers,
	}, nil
}

func (c *Client) responseToTransactions(resps []transactionResponse) ([]*Transaction, error) {
	txs := make([]*Transaction, len(resps))
	for i := range resps {
		tx, err := c.responseToTransaction(&resps[i])
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}
	return txs, nil
}
