package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCommentTree(t *testing.T) {
	roots := testutil.ToFloat64(CommentTreeRecords.WithLabelValues("root"))
	replies := testutil.ToFloat64(CommentTreeRecords.WithLabelValues("reply"))
	orphans := testutil.ToFloat64(CommentTreeRecords.WithLabelValues("orphan"))
	collapsed := testutil.ToFloat64(CommentTreeRecords.WithLabelValues("collapsed"))

	ObserveCommentTree(10, 4, 6, 1, 0)

	assert.Equal(t, roots+4, testutil.ToFloat64(CommentTreeRecords.WithLabelValues("root")))
	assert.Equal(t, replies+6, testutil.ToFloat64(CommentTreeRecords.WithLabelValues("reply")))
	assert.Equal(t, orphans+1, testutil.ToFloat64(CommentTreeRecords.WithLabelValues("orphan")))
	assert.Equal(t, collapsed, testutil.ToFloat64(CommentTreeRecords.WithLabelValues("collapsed")),
		"zero counts should not be added")
	assert.Equal(t, 1, testutil.CollectAndCount(CommentTreeSize))
}

func TestObserveReaction(t *testing.T) {
	added := testutil.ToFloat64(ReactionsTotal.WithLabelValues("UPVOTE", "added"))
	removed := testutil.ToFloat64(ReactionsTotal.WithLabelValues("UPVOTE", "removed"))

	ObserveReaction("UPVOTE", true)
	ObserveReaction("UPVOTE", true)
	ObserveReaction("UPVOTE", false)

	assert.Equal(t, added+2, testutil.ToFloat64(ReactionsTotal.WithLabelValues("UPVOTE", "added")))
	assert.Equal(t, removed+1, testutil.ToFloat64(ReactionsTotal.WithLabelValues("UPVOTE", "removed")))
}

func TestObserveSeedBatch(t *testing.T) {
	initialSuccess := testutil.ToFloat64(RecordsProcessed.WithLabelValues("users", "success"))
	initialFailure := testutil.ToFloat64(RecordsProcessed.WithLabelValues("users", "failure"))

	ObserveSeedBatch("users", 0.2, 100, 5)

	assert.Equal(t, initialSuccess+100, testutil.ToFloat64(RecordsProcessed.WithLabelValues("users", "success")))
	assert.Equal(t, initialFailure+5, testutil.ToFloat64(RecordsProcessed.WithLabelValues("users", "failure")))
}

func TestObserveSeedBatchZeroCounts(t *testing.T) {
	initialSuccess := testutil.ToFloat64(RecordsProcessed.WithLabelValues("comments", "success"))
	initialFailure := testutil.ToFloat64(RecordsProcessed.WithLabelValues("comments", "failure"))

	ObserveSeedBatch("comments", 0.1, 0, 0)

	assert.Equal(t, initialSuccess, testutil.ToFloat64(RecordsProcessed.WithLabelValues("comments", "success")))
	assert.Equal(t, initialFailure, testutil.ToFloat64(RecordsProcessed.WithLabelValues("comments", "failure")))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestStreamingExportMetrics(t *testing.T) {
	initialTotal := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("content", "ndjson", "success"))
	initialInFlight := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("content"))
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("content", "ndjson"))

	StartStreamingExport("content")
	assert.Equal(t, initialInFlight+1, testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("content")))

	EndStreamingExport("content", "ndjson", "success", 0.5, 40)

	assert.Equal(t, initialInFlight, testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("content")))
	assert.Equal(t, initialTotal+1, testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("content", "ndjson", "success")))
	assert.Equal(t, initialRecords+40, testutil.ToFloat64(StreamingExportRecords.WithLabelValues("content", "ndjson")))
}

func TestStreamingExportZeroRecords(t *testing.T) {
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("content", "csv"))

	StartStreamingExport("content")
	EndStreamingExport("content", "csv", "success", 0.1, 0)

	assert.Equal(t, initialRecords, testutil.ToFloat64(StreamingExportRecords.WithLabelValues("content", "csv")))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	assert.Equal(t, 1, testutil.CollectAndCount(testHistogram))
	assert.GreaterOrEqual(t, timer.Seconds(), 0.02)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	provider := &mockPoolStatsProvider{totalConns: 10, idleConns: 5, acquiredConns: 5}

	collector := NewPoolStatsCollectorWithProvider(provider)
	collector.Start(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{total: m.totalConns, idle: m.idleConns, acquired: m.acquiredConns}
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
