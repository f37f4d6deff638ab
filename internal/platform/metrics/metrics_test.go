// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vodbrowse/internal/platform/metrics"
)

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, metrics.Default(), metrics.Default())
}

func TestObserveUpstream(t *testing.T) {
	m := metrics.Default()
	counter := m.UpstreamRequestsTotal.WithLabelValues("metrics-test", "items", metrics.OutcomeEmpty)

	before := testutil.ToFloat64(counter)
	m.ObserveUpstream("metrics-test", "items", metrics.OutcomeEmpty, 120*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestObserveHTTP(t *testing.T) {
	m := metrics.Default()
	counter := m.HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "404")

	before := testutil.ToFloat64(counter)
	m.ObserveHTTP("GET", "/metrics-test", 404, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
