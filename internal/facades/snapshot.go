package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

// ErrSnapshotUnavailable is returned when the poll aggregator cannot be queried.
var ErrSnapshotUnavailable = errors.New("snapshot hub unavailable")

const proposalsBySpaceQuery = `
query ProposalsBySpace($space: String!, $first: Int!) {
  proposals(
    first: $first
    skip: 0
    where: { space_in: [$space] }
    orderBy: "created"
    orderDirection: desc
  ) {
    id
    title
    body
    choices
    start
    end
    state
    scores
    scores_total
    votes
    author
    created
    snapshot
  }
}`

// SnapshotClient queries the snapshot.org GraphQL hub.
type SnapshotClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewSnapshotClient creates a client for the GraphQL endpoint.
func NewSnapshotClient(endpoint string, httpClient *http.Client) *SnapshotClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &SnapshotClient{endpoint: endpoint, httpClient: httpClient}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type proposalsResponse struct {
	Data struct {
		Proposals []models.SnapshotProposal `json:"proposals"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ListProposals returns the newest proposals of space.
func (c *SnapshotClient) ListProposals(ctx context.Context, space string, first int) ([]models.SnapshotProposal, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     proposalsBySpaceQuery,
		Variables: map[string]any{"space": space, "first": first},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("snapshot query failed", "space", space, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSnapshotUnavailable, resp.StatusCode)
	}

	var out proposalsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrSnapshotUnavailable, err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotUnavailable, out.Errors[0].Message)
	}
	if out.Data.Proposals == nil {
		return nil, fmt.Errorf("%w: no proposals in response", ErrSnapshotUnavailable)
	}

	logger.Log.Infow("snapshot proposals fetched", "space", space, "count", len(out.Data.Proposals))
	return out.Data.Proposals, nil
}
