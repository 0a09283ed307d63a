// analytics.go wraps the PostHog client so callers never have to care whether
// analytics is configured. Without an API key the wrapper silently drops events.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient is a nil-safe wrapper around the PostHog client.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient builds the wrapper. An empty API key yields a disabled
// client whose Enqueue and Close are no-ops.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Info("Analytics disabled, no API key configured")
		return &AnalyticsClient{}
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Warn("Failed to initialize analytics client, events will be dropped", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Analytics client initialized")
	return &AnalyticsClient{client: client, logger: logger}
}

// IsInitialized reports whether events will actually be delivered.
func (a *AnalyticsClient) IsInitialized() bool {
	return a.client != nil
}

// Enqueue sends a capture event attributed to the given user.
func (a *AnalyticsClient) Enqueue(distinctID, event string, properties map[string]any) {
	if a.client == nil {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes buffered events and shuts the client down.
func (a *AnalyticsClient) Close() {
	if a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
