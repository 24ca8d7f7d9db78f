package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"go-bank-console/logger"
	"go-bank-console/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type operationKey struct{}

func withOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func operationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok {
		return op
	}
	return "unknown"
}

// loggingTransport is the request/response interceptor pair of the API
// client. It tags requests with an id, logs failures and records metrics, and
// hands requests and responses through otherwise unchanged.
type loggingTransport struct {
	next    http.RoundTripper
	metrics *metrics.Collector
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	operation := operationFrom(req.Context())

	if req.Header.Get(RequestIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	log := logger.Log.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": req.Header.Get(RequestIDHeader),
	})
	log.Debug("Sending request to accounts service")

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.metrics.ObserveBackendRequest(operation, 0, err, elapsed)
		log.WithError(err).Error("Network error, no response from accounts service")
		return resp, err
	}
	t.metrics.ObserveBackendRequest(operation, resp.StatusCode, nil, elapsed)

	if resp.StatusCode >= http.StatusBadRequest {
		payload, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(payload))
		if readErr != nil {
			log.WithError(readErr).Warn("Could not read error payload")
		}
		log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"payload":     string(payload),
			"duration_ms": elapsed.Milliseconds(),
		}).Error("Accounts service answered with an error")
		return resp, nil
	}

	log.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": elapsed.Milliseconds(),
	}).Debug("Received response from accounts service")
	return resp, nil
}
