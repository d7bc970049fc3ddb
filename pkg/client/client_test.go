package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
	"github.com/oadr3-protocol/oadr3-go/pkg/wirelog"
)

// fastRetry keeps retry tests quick.
var fastRetry = RetryConfig{Attempts: 3, Initial: time.Millisecond, Max: 5 * time.Millisecond, Multiplier: 2}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Retry: fastRetry})
	require.NoError(t, err)
	return c, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	c, err := New(Config{BaseURL: "https://vtn.example/openadr3/"})
	require.NoError(t, err)
	assert.Equal(t, "https://vtn.example/openadr3", c.BaseURL())
}

func TestListPrograms_Filter(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "GROUP", q.Get("targetType"))
		assert.Equal(t, []string{"residential", "commercial"}, q["targetValues"])
		assert.Equal(t, "10", q.Get("skip"))
		assert.Equal(t, "20", q.Get("limit"))

		writeJSON(t, w, http.StatusOK, []model.Program{{ID: "p-1", ProgramName: "prog"}})
	}))

	programs, err := c.ListPrograms(context.Background(), ListFilter{
		TargetType:   names.TargetTypeGroup,
		TargetValues: []string{"residential", "commercial"},
		Page:         Page{Skip: 10, Limit: 20},
	})
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, model.ObjectID("p-1"), programs[0].ID)
}

func TestCreateEvent_RoundTrip(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var e model.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		assert.Equal(t, model.ObjectID("p-1"), e.ProgramID)

		e.ID = "e-99"
		writeJSON(t, w, http.StatusCreated, e)
	}))

	event := model.Event{
		ProgramID: "p-1",
		Intervals: []model.Interval{{ID: 0, Payloads: []model.ValuesMap{model.NewValuesMap("PRICE", 0.23)}}},
	}
	created, err := c.CreateEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, model.ObjectID("e-99"), created.ID)
}

func TestCreateEvent_ValidatesLocally(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid event must not reach the VTN")
	}))

	_, err := c.CreateEvent(context.Background(), model.Event{})
	assert.ErrorIs(t, err, model.ErrMissingField)
}

func TestGetProgram_Problem(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, model.Problem{
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: "no program p-404",
		})
	}))

	_, err := c.GetProgram(context.Background(), "p-404")
	var problem *model.Problem
	require.ErrorAs(t, err, &problem)
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "no program p-404", problem.Detail)
}

func TestDo_StatusErrorForOpaqueBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))

	_, err := c.GetProgram(context.Background(), "p-1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Contains(t, se.Error(), "gateway exploded")
}

func TestErrorFromResponse_RetryAfterWithProblem(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"2"}},
		Body:       io.NopCloser(strings.NewReader(`{"title":"Too Many Requests","status":429}`)),
	}
	err := c.errorFromResponse(resp)

	// The delay must survive even when the body parses as a Problem.
	assert.Equal(t, 2*time.Second, retryAfter(err))

	var problem *model.Problem
	require.ErrorAs(t, err, &problem)
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
}

func TestDo_RetriesIdempotent(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, []model.Event{})
	}))

	_, err := c.ListEvents(context.Background(), EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_NoRetryOnPost(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))

	_, err := c.CreateReport(context.Background(), model.Report{
		ProgramID:  "p-1",
		EventID:    "e-1",
		ClientName: "client-1",
		Resources: []model.ReportResource{{
			ResourceName: "meter-1",
			Intervals:    []model.Interval{{Payloads: []model.ValuesMap{model.NewValuesMap("USAGE", 1.0)}}},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusBadRequest, model.Problem{Title: "Bad Request", Status: 400})
	}))

	_, err := c.GetEvent(context.Background(), "e-1")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestListAllEvents_Paginates(t *testing.T) {
	// 120 events, slightly over two full pages of 50.
	events := make([]model.Event, 120)
	for i := range events {
		events[i] = model.Event{ID: model.ObjectID("e-" + strconv.Itoa(i)), ProgramID: "p-1"}
	}

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		require.Equal(t, MaxPageLimit, limit)

		end := skip + limit
		if end > len(events) {
			end = len(events)
		}
		if skip > len(events) {
			skip = len(events)
		}
		writeJSON(t, w, http.StatusOK, events[skip:end])
	}))

	all, err := c.ListAllEvents(context.Background(), EventFilter{ProgramID: "p-1"})
	require.NoError(t, err)
	require.Len(t, all, 120)
	assert.Equal(t, model.ObjectID("e-119"), all[119].ID)
}

func TestClient_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []model.Ven{})
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL:     srv.URL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok-abc"}),
	})
	require.NoError(t, err)

	_, err = c.ListVens(context.Background(), ListFilter{})
	require.NoError(t, err)
}

func TestClient_WireLogRecordsExchanges(t *testing.T) {
	var captured []wirelog.Exchange
	capture := wirelogFunc(func(ex wirelog.Exchange) { captured = append(captured, ex) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []model.Program{})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, WireLog: capture})
	require.NoError(t, err)

	_, err = c.ListPrograms(context.Background(), ListFilter{})
	require.NoError(t, err)

	require.Len(t, captured, 1)
	assert.Equal(t, "GET", captured[0].Method)
	assert.Equal(t, "/programs", captured[0].Path)
	assert.Equal(t, http.StatusOK, captured[0].Status)
	assert.NotEmpty(t, captured[0].RequestID)
}

// wirelogFunc adapts a function to the wirelog.Logger interface.
type wirelogFunc func(wirelog.Exchange)

func (f wirelogFunc) Log(ex wirelog.Exchange) { f(ex) }

func TestDeleteSubscription(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/subscriptions/s-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteSubscription(context.Background(), "s-1"))
}

func TestDo_ContextCancelDuringBackoff(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		http.Error(w, "busy", http.StatusTooManyRequests)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ListPrograms(ctx, ListFilter{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
