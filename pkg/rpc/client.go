package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kwallet-network/kwallet/pkg/circuitbreaker"
	"github.com/kwallet-network/kwallet/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

const (
	jsonrpcVersion = "2.0"

	defaultPollInterval = time.Second
)

// ServiceOpts is the struct given to NewService method
type ServiceOpts struct {
	URL string
	// Timeout of a single http request, defaults to 30s.
	Timeout time.Duration
	// RequestsPerSecond paces outgoing requests. Zero means unlimited.
	RequestsPerSecond int
	// PollInterval is the interval between two lookups of WaitForInclusion.
	PollInterval time.Duration
	// Registerer, if not nil, is where the client metrics are registered.
	Registerer prometheus.Registerer
}

func (o ServiceOpts) validate() error {
	return validateURL(o.URL)
}

// transport is shared by a client and all its snapshots.
type transport struct {
	httpClient   *http.Client
	cb           *gobreaker.CircuitBreaker
	limiter      ratelimit.Limiter
	metrics      *metrics
	pollInterval time.Duration
}

type client struct {
	lock *sync.RWMutex
	url  string
	*transport
}

// NewService returns a JSON-RPC client as a Service interface
func NewService(opts ServiceOpts) (Service, error) {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	limiter := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		limiter = ratelimit.New(opts.RequestsPerSecond)
	}
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, err
	}

	return &client{
		lock: &sync.RWMutex{},
		url:  strings.TrimRight(opts.URL, "/"),
		transport: &transport{
			httpClient:   util.NewHTTPClient(opts.Timeout),
			cb:           circuitbreaker.NewCircuitBreaker("rpc"),
			limiter:      limiter,
			metrics:      m,
			pollInterval: pollInterval,
		},
	}, nil
}

func (c *client) Endpoint() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.url
}

func (c *client) SetEndpoint(endpoint string) error {
	if err := validateURL(endpoint); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	c.url = strings.TrimRight(endpoint, "/")
	return nil
}

func (c *client) Snapshot() Service {
	return &client{
		lock:      &sync.RWMutex{},
		url:       c.Endpoint(),
		transport: c.transport,
	}
}

type jsonrpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type jsonrpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *jsonrpcError   `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// call sends a request to the current endpoint and decodes its result into
// result. Only transport failures count against the circuit breaker, error
// objects returned by the node do not.
func (c *client) call(ctx context.Context, method string, params, result interface{}) error {
	req := jsonrpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return &Error{Method: method, Message: "failed to encode request", Err: err}
	}

	endpoint := c.Endpoint()
	c.limiter.Take()
	start := time.Now()

	res, err := c.cb.Execute(func() (interface{}, error) {
		status, respBody, err := util.PostJSON(ctx, c.httpClient, endpoint, body, nil)
		if err != nil {
			return nil, err
		}

		resp := &jsonrpcResponse{}
		if err := json.Unmarshal(respBody, resp); err != nil {
			if status != http.StatusOK {
				return nil, &Error{
					Method:  method,
					Code:    status,
					Message: http.StatusText(status),
				}
			}
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return resp, nil
	})

	c.metrics.observe(method, start, err, res)

	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			return rpcErr
		}
		log.WithError(err).WithFields(log.Fields{
			"method":   method,
			"endpoint": endpoint,
		}).Debug("rpc request failed")
		return &Error{Method: method, Err: err}
	}

	resp := res.(*jsonrpcResponse)
	if resp.Error != nil {
		return newNodeError(method, resp.Error)
	}
	if result == nil || len(resp.Result) <= 0 || string(resp.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return &Error{Method: method, Message: "failed to decode result", Err: err}
	}
	return nil
}

type errorData struct {
	Code int      `json:"code"`
	Logs []string `json:"logs"`
}

// newNodeError converts an error object into an *Error. Nodes send data
// either as an object or as a string holding a JSON object.
func newNodeError(method string, e *jsonrpcError) *Error {
	rpcErr := &Error{
		Method:  method,
		Code:    e.Code,
		Message: e.Message,
	}
	if len(e.Data) <= 0 {
		return rpcErr
	}

	raw := []byte(e.Data)
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		raw = []byte(str)
	}
	data := errorData{}
	if err := json.Unmarshal(raw, &data); err == nil {
		rpcErr.ChainCode = data.Code
		rpcErr.Logs = data.Logs
	}
	return rpcErr
}

func validateURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
}
