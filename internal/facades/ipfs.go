package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-governance/internal/logger"
)

// ErrIPFSNotConfigured is returned when no pinning API key is set.
var ErrIPFSNotConfigured = errors.New("ipfs api key not configured")

// IPFSClient talks to an IPFS RPC-compatible pinning service.
type IPFSClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// IPFSOpt configures an IPFSClient.
type IPFSOpt func(*IPFSClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) IPFSOpt {
	return func(i *IPFSClient) {
		i.httpClient = c
	}
}

// NewIPFSClient creates a client for the RPC endpoint at baseURL.
func NewIPFSClient(baseURL, apiKey string, opts ...IPFSOpt) *IPFSClient {
	c := &IPFSClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// AddJSON uploads v as a JSON file and returns its CID.
func (c *IPFSClient) AddJSON(ctx context.Context, v any) (string, error) {
	if c.apiKey == "" {
		return "", ErrIPFSNotConfigured
	}

	content, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "document.json")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v0/add", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		logger.Log.Errorw("ipfs add failed", "error", err)
		return "", fmt.Errorf("ipfs add: %w", err)
	}

	var out addResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("ipfs add: decode response: %w", err)
	}
	if out.Hash == "" {
		return "", errors.New("ipfs add: no CID returned")
	}

	logger.Log.Infow("ipfs add", "cid", out.Hash, "size", len(content))
	return out.Hash, nil
}

// PinCID pins an already added CID.
func (c *IPFSClient) PinCID(ctx context.Context, cid string) error {
	if c.apiKey == "" {
		return ErrIPFSNotConfigured
	}

	endpoint := c.baseURL + "/api/v0/pin/add?arg=" + url.QueryEscape(cid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	if _, err := c.do(req); err != nil {
		logger.Log.Errorw("ipfs pin failed", "cid", cid, "error", err)
		return fmt.Errorf("ipfs pin: %w", err)
	}

	logger.Log.Infow("ipfs pin", "cid", cid)
	return nil
}

// PinJSON adds v and pins the resulting CID.
func (c *IPFSClient) PinJSON(ctx context.Context, v any) (string, error) {
	cid, err := c.AddJSON(ctx, v)
	if err != nil {
		return "", err
	}
	if err := c.PinCID(ctx, cid); err != nil {
		return "", err
	}
	return cid, nil
}

func (c *IPFSClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
