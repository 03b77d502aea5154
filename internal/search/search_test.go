package search_test

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/search"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newConfig(alphabet string, minLen, maxLen uint, target []byte) *search.Config {
	cfg := search.NewConfig()
	cfg.Alphabet = []rune(alphabet)
	cfg.MinLen = minLen
	cfg.MaxLen = maxLen
	cfg.Target = target
	cfg.Parallelism = 4
	cfg.BatchSize = 16

	return cfg
}

func TestRun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		alphabet  string
		plaintext string
		expected  search.Outcome
		minLen    uint
		maxLen    uint
		evaluated int64
	}{
		{
			name:      "single character",
			alphabet:  "ab",
			minLen:    1,
			maxLen:    2,
			plaintext: "b",
			expected:  search.Found,
		},
		{
			name:      "longest length",
			alphabet:  "ab",
			minLen:    1,
			maxLen:    2,
			plaintext: "ba",
			expected:  search.Found,
		},
		{
			name:      "exhausted",
			alphabet:  "a",
			minLen:    1,
			maxLen:    3,
			plaintext: "zzz",
			expected:  search.NotFound,
			evaluated: 3,
		},
		{
			name:      "exhausted over several batches",
			alphabet:  "abc",
			minLen:    1,
			maxLen:    4,
			plaintext: "abcd",
			expected:  search.NotFound,
			evaluated: 3 + 9 + 27 + 81,
		},
		{
			name:      "below range",
			alphabet:  "ab",
			minLen:    2,
			maxLen:    3,
			plaintext: "a",
			expected:  search.NotFound,
			evaluated: 4 + 8,
		},
		{
			name:      "empty plaintext",
			alphabet:  "ab",
			minLen:    0,
			maxLen:    2,
			plaintext: "",
			expected:  search.Found,
		},
		{
			name:      "empty alphabet",
			alphabet:  "",
			minLen:    1,
			maxLen:    5,
			plaintext: "a",
			expected:  search.NotFound,
			evaluated: 0,
		},
		{
			name:      "empty alphabet with zero length",
			alphabet:  "",
			minLen:    0,
			maxLen:    5,
			plaintext: "",
			expected:  search.Found,
		},
		{
			name:      "duplicate characters",
			alphabet:  "aa",
			minLen:    2,
			maxLen:    2,
			plaintext: "b",
			expected:  search.NotFound,
			evaluated: 4,
		},
		{
			name:      "multi-byte characters",
			alphabet:  "äб€",
			minLen:    1,
			maxLen:    3,
			plaintext: "б€ä",
			expected:  search.Found,
		},
		{
			name:      "default alphabet",
			alphabet:  search.DefaultAlphabet,
			minLen:    1,
			maxLen:    2,
			plaintext: "~0",
			expected:  search.Found,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := newConfig(tc.alphabet, tc.minLen, tc.maxLen, md5Sum(tc.plaintext))

			res, err := search.Run(t.Context(), newTestLogger(), cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, res.Outcome)
			assert.NotEmpty(t, res.RunID)

			if tc.expected == search.Found {
				assert.True(t, res.Found())
				assert.Equal(t, tc.plaintext, res.Plaintext)
				assert.Equal(t, uint(len([]rune(tc.plaintext))), res.Length)
				assert.Positive(t, res.Evaluated)

				return
			}

			assert.False(t, res.Found())
			assert.Empty(t, res.Plaintext)
			assert.Equal(t, tc.evaluated, res.Evaluated)
		})
	}
}

func TestRunRoundTrip(t *testing.T) {
	t.Parallel()

	const alphabet = "abcdef"

	rnd := rand.New(rand.NewPCG(42, 1024)) //nolint:gosec

	for range 20 {
		var sb strings.Builder

		length := 1 + rnd.IntN(4)
		for range length {
			sb.WriteByte(alphabet[rnd.IntN(len(alphabet))])
		}

		plaintext := sb.String()

		t.Run(plaintext, func(t *testing.T) {
			t.Parallel()

			res, err := search.Run(t.Context(), newTestLogger(), newConfig(alphabet, 1, 4, md5Sum(plaintext)))
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, plaintext, res.Plaintext)
		})
	}
}

func TestRunAlgorithms(t *testing.T) {
	t.Parallel()

	for _, algorithm := range []string{"md4", "sha1", "sha256", "sha512", "sha3-256", "keccak256", "blake2b-256", "blake2s-256", "blake3", "ripemd160"} {
		t.Run(algorithm, func(t *testing.T) {
			t.Parallel()

			target, err := digest.Compute(algorithm, []byte("zyx"))
			require.NoError(t, err)

			cfg := newConfig("xyz", 1, 3, target)
			cfg.Algorithm = algorithm

			res, err := search.Run(t.Context(), newTestLogger(), cfg)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, "zyx", res.Plaintext)
		})
	}
}

func TestRunCollisionsReturnOneMatch(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)

	cfg := newConfig("abc", 1, 3, []byte{2})
	cfg.Registry = reg
	cfg.Algorithm = "length"

	for range 10 {
		res, err := search.Run(t.Context(), newTestLogger(), cfg)
		require.NoError(t, err)
		require.True(t, res.Found())
		assert.Equal(t, uint(2), res.Length)
		assert.Len(t, res.Plaintext, 2)
		assert.Subset(t, []rune("abc"), []rune(res.Plaintext))
	}
}

func TestRunSingleWorkerFollowsEnumerationOrder(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)

	cfg := newConfig("xyz", 2, 4, []byte{3})
	cfg.Registry = reg
	cfg.Algorithm = "length"
	cfg.Parallelism = 1
	cfg.BatchSize = 1

	res, err := search.Run(t.Context(), newTestLogger(), cfg)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "xxx", res.Plaintext)
	assert.Equal(t, int64(10), res.Evaluated)
}

func TestRunStopsPromptlyAfterMatch(t *testing.T) {
	t.Parallel()

	reg, sums := newTestRegistry(t)

	cfg := newConfig(search.DefaultAlphabet, 1, 6, md5Sum("a"))
	cfg.Registry = reg
	cfg.Algorithm = "counting-md5"
	cfg.BatchSize = search.DefaultBatchSize

	res, err := search.Run(t.Context(), newTestLogger(), cfg)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "a", res.Plaintext)

	// 94^6 candidates would take minutes, a prompt stop leaves a few batches at most.
	evaluated := sums.Load()
	assert.Equal(t, evaluated, res.Evaluated)
	assert.Less(t, evaluated, int64(10_000_000))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, evaluated, sums.Load(), "no digest may be computed after Run returned")
}

func TestRunRejectsInvalidConfigWithoutWork(t *testing.T) {
	t.Parallel()

	reg, sums := newTestRegistry(t)

	cfg := newConfig("ab", 5, 3, md5Sum("ab"))
	cfg.Registry = reg
	cfg.Algorithm = "counting-md5"

	res, err := search.Run(t.Context(), newTestLogger(), cfg)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, search.IsConfigError(err))

	var rangeErr *search.LengthRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint(5), rangeErr.MinLen)
	assert.Equal(t, uint(3), rangeErr.MaxLen)

	assert.Zero(t, sums.Load())
}

func TestRunTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	cfg := newConfig(search.DefaultAlphabet, 8, 8, md5Sum("zzz"))
	cfg.BatchSize = search.DefaultBatchSize

	startTime := time.Now()

	res, err := search.Run(ctx, newTestLogger(), cfg)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Less(t, time.Since(startTime), 5*time.Second)

	var canceledErr *search.CanceledError
	require.ErrorAs(t, err, &canceledErr)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, search.IsConfigError(err))
}

func TestRunAlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	res, err := search.Run(ctx, newTestLogger(), newConfig("ab", 1, 2, md5Sum("b")))
	require.Error(t, err)
	assert.Nil(t, res)
	require.ErrorIs(t, err, context.Canceled)

	var canceledErr *search.CanceledError
	require.ErrorAs(t, err, &canceledErr)
	assert.Zero(t, canceledErr.Evaluated)
}

func TestRunKeepsCancellationCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("interrupted")

	ctx, cancel := context.WithCancelCause(t.Context())
	cancel(cause)

	_, err := search.Run(ctx, newTestLogger(), newConfig("ab", 1, 2, md5Sum("b")))
	require.ErrorIs(t, err, cause)
}

func TestRunReportsPanickingDigest(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry(t)

	cfg := newConfig("ab", 1, 2, []byte{1})
	cfg.Registry = reg
	cfg.Algorithm = "panic"

	res, err := search.Run(t.Context(), newTestLogger(), cfg)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "digest exploded")
}

func TestRunProgress(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
	defer cancel()

	buf := new(bytes.Buffer)
	logger := log.New(log.WithOutput(&syncWriter{w: buf}), log.WithLevel(log.InfoLevel), log.WithFormatter(&logrus.JSONFormatter{}))

	cfg := newConfig(search.DefaultAlphabet, 8, 8, md5Sum("zzz"))
	cfg.ProgressInterval = 20 * time.Millisecond

	_, err := search.Run(ctx, logger, cfg)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Contains(t, buf.String(), "candidates (")
	assert.Contains(t, buf.String(), `"in-flight":`)
	assert.Contains(t, buf.String(), `"batches":`)
}

func TestRunTelemetry(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()

	tlm, err := telemetry.NewTelemeterWithProviders(
		"hashbrute-test",
		sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)),
		sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	)
	require.NoError(t, err)

	ctx := telemetry.ContextWithTelemeter(t.Context(), tlm)

	res, err := search.Run(ctx, newTestLogger(), newConfig("ab", 1, 3, md5Sum("zz")))
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, res.Outcome)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}

	assert.Contains(t, names, "search")
	assert.Contains(t, names, "search_length")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var candidates int64

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "candidates_count" {
				for _, point := range sum.DataPoints {
					candidates += point.Value
				}
			}
		}
	}

	assert.Equal(t, res.Evaluated, candidates)
	require.NoError(t, tlm.Shutdown(context.Background()))
}

type syncWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.w.Write(p)
}
