package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qcidev/qci-registry/registry"
)

func testServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	hits := new(int)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/qcis/42", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(recordPayload{
			QCINumber:          42,
			Title:              "Adjust emissions schedule",
			ChainName:          "Polygon",
			ContentHash:        "0x6c00000000000000000000000000000000000000000000000000000000000000",
			IPFSUrl:            "ipfs://bafybeitest",
			Author:             "0x000000000000000000000000000000000000dEaD",
			CreatedAt:          1700000000,
			LastUpdated:        1700005000,
			Version:            2,
			Status:             "Ready for Snapshot",
			SnapshotProposalID: "0xsnap",
		})
	})
	mux.HandleFunc("/v1/qcis/404", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(errorPayload{Error: "no such record"})
	})
	mux.HandleFunc("/v1/qcis", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("chain") == "Polygon" {
			json.NewEncoder(w).Encode(listPayload{
				QCIs: []recordPayload{
					{QCINumber: 42, ChainName: "Polygon", Status: "Posted to Snapshot"},
				},
				Total: 1,
			})
			return
		}
		json.NewEncoder(w).Encode(listPayload{
			QCIs: []recordPayload{
				{QCINumber: 1, ChainName: "Ethereum", Status: "Draft"},
				{QCINumber: 42, ChainName: "Polygon", Status: "Posted to Snapshot"},
				{QCINumber: 43, ChainName: "Polygon", Status: "bogus"},
			},
			Total: 3,
		})
	})
	mux.HandleFunc("/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthPayload{Status: "ok", LastIndexedBlock: 1234567})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, hits
}

func TestGetQCI(t *testing.T) {
	srv, hits := testServer(t)
	c := NewClient(srv.URL)

	q, err := c.GetQCI(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, uint64(42), q.Number.Uint64())
	require.Equal(t, "Adjust emissions schedule", q.Title)
	require.Equal(t, registry.StatusReadyForSnapshot, q.Status)
	require.Equal(t, int64(1700000000), q.CreatedAt.Unix())
	require.True(t, q.HasSnapshot())
	require.False(t, q.Implemented())

	// Second read is served from the cache.
	again, err := c.GetQCI(context.Background(), 42)
	require.NoError(t, err)
	require.Same(t, q, again)
	require.Equal(t, 1, *hits)
}

func TestGetQCINotFound(t *testing.T) {
	srv, _ := testServer(t)
	c := NewClient(srv.URL)

	_, err := c.GetQCI(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListQCIs(t *testing.T) {
	srv, _ := testServer(t)
	c := NewClient(srv.URL)

	// Undecodable records are skipped, not fatal.
	all, err := c.ListQCIs(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	polygon, err := c.ListQCIs(context.Background(), ListOptions{ChainName: "Polygon"})
	require.NoError(t, err)
	require.Len(t, polygon, 1)
	require.Equal(t, registry.StatusPostedToSnapshot, polygon[0].Status)
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	c := NewClient(srv.URL)

	block, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(1234567), block)
}
