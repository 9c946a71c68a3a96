package server

import (
	"context"
	"sync"

	"github.com/adsmcp/google-ads-mcp/internal/ads"
	"github.com/adsmcp/google-ads-mcp/internal/config"
	"github.com/adsmcp/google-ads-mcp/internal/instrumentation"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    config.Ads

	mu       sync.RWMutex
	client   *ads.Client
	fatalErr error

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	shutdown    bool
}

// NewServerContext creates a new server context. The Ads client is not
// constructed here; it is built lazily on first use so the server can start
// and report readiness before credentials are touched.
func NewServerContext(ctx context.Context, cfg config.Ads) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		shutdown: false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the Ads configuration the context was created with.
func (sc *ServerContext) Config() config.Ads {
	return sc.cfg
}

// AdsClient returns the shared Google Ads client, creating it on first use.
// Concurrent callers during first use observe a single construction; the
// client is cached for the lifetime of the server.
//
// A configuration fault (missing credentials or developer token) is
// memoized: every subsequent call fails fast with the same error, since no
// retry can succeed without a restart. Transient construction failures are
// not memoized and the next call retries.
func (sc *ServerContext) AdsClient(ctx context.Context) (*ads.Client, error) {
	sc.mu.RLock()
	client, fatalErr := sc.client, sc.fatalErr
	sc.mu.RUnlock()

	if client != nil {
		return client, nil
	}
	if fatalErr != nil {
		return nil, fatalErr
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Re-check under the write lock: another caller may have won the race.
	if sc.client != nil {
		return sc.client, nil
	}
	if sc.fatalErr != nil {
		return nil, sc.fatalErr
	}

	client, err := ads.NewClient(ctx, sc.cfg)
	if err != nil {
		if ads.IsConfigError(err) {
			sc.fatalErr = err
		}
		return nil, err
	}

	sc.client = client
	return client, nil
}

// ConfigFault returns the memoized configuration fault from a failed client
// construction, or nil when no fault has been observed. Useful for health
// reporting; a fault here means every tool call will fail until restart.
func (sc *ServerContext) ConfigFault() error {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.fatalErr
}

// SetAdsClient sets the Ads client directly. Intended for tests.
func (sc *ServerContext) SetAdsClient(client *ads.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
	sc.fatalErr = nil
}

// SetMetrics sets the metrics recorder for tool instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocations.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// AuditLogger returns the audit logger, or nil if audit logging is disabled.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
