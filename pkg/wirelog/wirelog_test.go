package wirelog

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExchange(id string, status int) Exchange {
	return Exchange{
		Time:      time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		RequestID: id,
		Method:    "GET",
		Path:      "/programs",
		Status:    status,
		Duration:  42 * time.Millisecond,
	}
}

func TestFileLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.jsonl")

	l, err := NewFileLogger(path)
	require.NoError(t, err)

	l.Log(testExchange("r-1", 200))
	l.Log(testExchange("r-2", 404))
	require.NoError(t, l.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []Exchange
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ex Exchange
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ex))
		got = append(got, ex)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "r-1", got[0].RequestID)
	assert.Equal(t, 404, got[1].Status)
}

func TestFileLogger_LogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.jsonl")

	l, err := NewFileLogger(path)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	// Must not panic or write.
	l.Log(testExchange("r-late", 200))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileLogger_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.jsonl")

	l, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Log(testExchange("r", 200))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, l.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	// Every line must be valid JSON: no interleaved writes.
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ex Exchange
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ex))
		lines++
	}
	assert.Equal(t, 200, lines)
}

type captureLogger struct {
	mu  sync.Mutex
	got []Exchange
}

func (c *captureLogger) Log(ex Exchange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, ex)
}

func TestMultiLogger_FansOut(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, b, NoopLogger{})

	m.Log(testExchange("r-1", 200))

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestSlogAdapter(t *testing.T) {
	// Smoke test: the adapter must emit without panicking, including the
	// error-only shape.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	a := NewSlogAdapter(logger)

	a.Log(testExchange("r-1", 200))

	ex := testExchange("r-2", 0)
	ex.Error = "connection refused"
	a.Log(ex)
}
