package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/navarrastar/resume-verify/pkg/models"
)

const startPath = "/start"

// ResultKind identifies how a verification request resolved
type ResultKind int

const (
	// ResultScheduled means a 2xx response with success=true
	ResultScheduled ResultKind = iota
	// ResultRejected means the backend answered but reported failure
	ResultRejected
	// ResultTransportFailure means no usable response was received: the request
	// failed, or the body could not be read or parsed as JSON
	ResultTransportFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultScheduled:
		return "scheduled"
	case ResultRejected:
		return "rejected"
	case ResultTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of one StartVerification call.
// StatusCode is kept when a response arrived but its body was not valid JSON.
type Result struct {
	Kind       ResultKind
	StatusCode int
	Body       models.VerificationResult
	Err        error
}

// Client defines the interface for talking to the verification intake endpoint
type Client interface {
	StartVerification(ctx context.Context, submission models.Submission) Result
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new intake client for the given base URL
func NewClient(baseURL string, timeout time.Duration) Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP lets callers supply their own *http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) Client {
	return &clientImpl{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *clientImpl) StartVerification(ctx context.Context, submission models.Submission) Result {
	jsonPayload, err := json.Marshal(submission)
	if err != nil {
		return Result{Kind: ResultTransportFailure, Err: fmt.Errorf("error creating payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+startPath, bytes.NewReader(jsonPayload))
	if err != nil {
		return Result{Kind: ResultTransportFailure, Err: fmt.Errorf("error creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Kind: ResultTransportFailure, Err: fmt.Errorf("error starting verification: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: ResultTransportFailure, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response: %w", err)}
	}

	result := Result{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &result.Body); err != nil {
		result.Kind = ResultTransportFailure
		result.Err = fmt.Errorf("error parsing response: %w", err)
		return result
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && result.Body.Success {
		result.Kind = ResultScheduled
	} else {
		result.Kind = ResultRejected
	}
	return result
}
