package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotClient_ListProposals(t *testing.T) {
	var got graphQLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"proposals":[{
			"id":"0xabc","title":"Adopt charter","body":"text","choices":["For","Against","Abstain"],
			"start":1700000000,"end":1700600000,"state":"closed","scores":[1500.5,200,3],
			"scores_total":1703.5,"votes":12,"author":"0xAuthor","created":1699990000,"snapshot":"18500000"}]}}`))
	}))
	defer srv.Close()

	c := NewSnapshotClient(srv.URL, srv.Client())
	proposals, err := c.ListProposals(context.Background(), "libertarianuniverse.eth", 100)
	require.NoError(t, err)

	assert.Equal(t, "libertarianuniverse.eth", got.Variables["space"])
	assert.EqualValues(t, 100, got.Variables["first"])
	require.Len(t, proposals, 1)
	p := proposals[0]
	assert.Equal(t, "0xabc", p.ID)
	assert.Equal(t, []float64{1500.5, 200, 3}, p.Scores)
	assert.Equal(t, "18500000", p.Snapshot)
	assert.Equal(t, 12, p.Votes)
}

func TestSnapshotClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"graphql error", http.StatusOK, `{"errors":[{"message":"bad query"}]}`},
		{"http error", http.StatusBadGateway, `upstream down`},
		{"not json", http.StatusOK, `<html>`},
		{"missing proposals", http.StatusOK, `{"data":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewSnapshotClient(srv.URL, nil).ListProposals(context.Background(), "space", 10)
			assert.ErrorIs(t, err, ErrSnapshotUnavailable)
		})
	}
}
