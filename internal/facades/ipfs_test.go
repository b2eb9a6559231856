package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinServer struct {
	mu       sync.Mutex
	uploads  []map[string]any
	pinned   []string
	addCode  int
	pinCode  int
	authSeen []string
}

func (s *pinServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0/add", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.authSeen = append(s.authSeen, r.Header.Get("Authorization"))
		if s.addCode != 0 {
			http.Error(w, "quota exceeded", s.addCode)
			return
		}
		file, _, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		raw, _ := io.ReadAll(file)
		var doc map[string]any
		assert.NoError(t, json.Unmarshal(raw, &doc))
		s.uploads = append(s.uploads, doc)
		_ = json.NewEncoder(w).Encode(map[string]string{"Name": "document.json", "Hash": "bafytestcid", "Size": "42"})
	})
	mux.HandleFunc("/api/v0/pin/add", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.pinCode != 0 {
			w.WriteHeader(s.pinCode)
			return
		}
		s.pinned = append(s.pinned, r.URL.Query().Get("arg"))
		_ = json.NewEncoder(w).Encode(map[string]any{"Pins": []string{r.URL.Query().Get("arg")}})
	})
	return mux
}

func TestIPFSClient_PinJSON(t *testing.T) {
	ps := &pinServer{}
	srv := httptest.NewServer(ps.handler(t))
	defer srv.Close()

	c := NewIPFSClient(srv.URL+"/", "secret-key", WithHTTPClient(srv.Client()))

	cid, err := c.PinJSON(context.Background(), map[string]any{"proposalId": "p1", "totals": map[string]string{"for": "1"}})
	require.NoError(t, err)
	assert.Equal(t, "bafytestcid", cid)

	require.Len(t, ps.uploads, 1)
	assert.Equal(t, "p1", ps.uploads[0]["proposalId"])
	assert.Equal(t, []string{"bafytestcid"}, ps.pinned)
	assert.Equal(t, []string{"Bearer secret-key"}, ps.authSeen)
}

func TestIPFSClient_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := NewIPFSClient("http://127.0.0.1:1", " ")
		_, err := c.PinJSON(context.Background(), map[string]string{})
		assert.ErrorIs(t, err, ErrIPFSNotConfigured)
		assert.ErrorIs(t, c.PinCID(context.Background(), "cid"), ErrIPFSNotConfigured)
	})

	t.Run("add rejected", func(t *testing.T) {
		ps := &pinServer{addCode: http.StatusPaymentRequired}
		srv := httptest.NewServer(ps.handler(t))
		defer srv.Close()

		c := NewIPFSClient(srv.URL, "k")
		_, err := c.AddJSON(context.Background(), map[string]string{"a": "b"})
		assert.ErrorContains(t, err, "402")
	})

	t.Run("pin rejected", func(t *testing.T) {
		ps := &pinServer{pinCode: http.StatusInternalServerError}
		srv := httptest.NewServer(ps.handler(t))
		defer srv.Close()

		c := NewIPFSClient(srv.URL, "k")
		_, err := c.PinJSON(context.Background(), map[string]string{"a": "b"})
		assert.Error(t, err)
		assert.Len(t, ps.uploads, 1)
	})
}
