package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddresses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/addresses", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"addresses": []string{"TRTLaddr1", "TRTLaddr2"},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	addrs, err := c.Addresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"TRTLaddr1", "TRTLaddr2"}, addrs)
}

func TestPrimaryAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses/primary", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"address": "TRTLprimary"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	addr, err := c.PrimaryAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRTLprimary", addr)
}

func TestCreateAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/addresses/create", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"address":         "TRTLnew",
			"privateSpendKey": "privkey",
			"publicSpendKey":  "pubkey",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	created, err := c.CreateAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRTLnew", created.Address)
	assert.Equal(t, "privkey", created.PrivateSpendKey)
	assert.Equal(t, "pubkey", created.PublicSpendKey)
}

func TestDeleteAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/addresses/TRTLgone", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	assert.NoError(t, c.DeleteAddress(context.Background(), "TRTLgone"))

	var verr *ValidationError
	err := c.DeleteAddress(context.Background(), "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "address", verr.Param)
}

func TestCreateIntegratedAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/addresses/TRTLaddr/abcdef1234", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"integratedAddress": "TRTLintegrated"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	addr, err := c.CreateIntegratedAddress(context.Background(), "TRTLaddr", "abcdef1234")
	require.NoError(t, err)
	assert.Equal(t, "TRTLintegrated", addr)
}

func TestCreateIntegratedAddress_MissingArgs(t *testing.T) {
	server, hits := countingServer(t)
	defer server.Close()
	c := newTestClient(t, server.URL, nil)

	var verr *ValidationError
	_, err := c.CreateIntegratedAddress(context.Background(), "", "abcdef1234")
	require.ErrorAs(t, err, &verr)

	_, err = c.CreateIntegratedAddress(context.Background(), "TRTLaddr", "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "paymentID", verr.Param)

	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestImportAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/addresses/import", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "spendkey", body["privateSpendKey"])
		assert.Equal(t, float64(0), body["scanHeight"])

		json.NewEncoder(w).Encode(map[string]string{"address": "TRTLimported"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	addr, err := c.ImportAddress(context.Background(), "spendkey", 0)
	require.NoError(t, err)
	assert.Equal(t, "TRTLimported", addr)

	var verr *ValidationError
	_, err = c.ImportAddress(context.Background(), "", 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "privateSpendKey", verr.Param)
}

func TestImportViewAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses/import/view", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "pubkey", body["publicSpendKey"])

		json.NewEncoder(w).Encode(map[string]string{"address": "TRTLview"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	addr, err := c.ImportViewAddress(context.Background(), "pubkey", 100)
	require.NoError(t, err)
	assert.Equal(t, "TRTLview", addr)
}

func TestValidateAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/addresses/validate", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "TRTLintegrated", body["address"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"isIntegrated":   true,
			"paymentID":      "abcdef1234",
			"actualAddress":  "TRTLactual",
			"publicSpendKey": "pubspend",
			"publicViewKey":  "pubview",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	v, err := c.ValidateAddress(context.Background(), "TRTLintegrated")
	require.NoError(t, err)
	assert.True(t, v.IsIntegrated)
	assert.Equal(t, "abcdef1234", v.PaymentID)
	assert.Equal(t, "TRTLactual", v.ActualAddress)
}

func TestKeys_Paths(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"privateViewKey": "viewkey"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)

	keys, err := c.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/keys", gotPath)
	assert.Equal(t, "viewkey", keys.PrivateViewKey)
	assert.Empty(t, keys.PrivateSpendKey, "view key responses carry no spend keys")

	_, err = c.Keys(context.Background(), "TRTLaddr")
	require.NoError(t, err)
	assert.Equal(t, "/keys/TRTLaddr", gotPath)
}

func TestKeysMnemonic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/keys/mnemonic/TRTLaddr", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"mnemonicSeed": "word1 word2 word3"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	seed, err := c.KeysMnemonic(context.Background(), "TRTLaddr")
	require.NoError(t, err)
	assert.Equal(t, "word1 word2 word3", seed)

	var verr *ValidationError
	_, err = c.KeysMnemonic(context.Background(), "")
	require.ErrorAs(t, err, &verr)
}
