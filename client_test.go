package prof

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-nine-app/prof-go/logging"
)

func TestNew_StripsSingleTrailingSlash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no slash", "http://localhost:3007", "http://localhost:3007"},
		{"one slash", "http://localhost:3007/", "http://localhost:3007"},
		{"two slashes keep one", "http://localhost:3007//", "http://localhost:3007/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.in)
			assert.Equal(t, tt.want, c.baseURL)
		})
	}
}

func TestSetSigner(t *testing.T) {
	c := New("http://localhost:3007")

	_, err := c.authParams()
	require.Error(t, err)

	c.SetSigner(newFakeSigner("k"))

	_, err = c.authParams()
	require.NoError(t, err)
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	c := New("http://localhost:3007", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpc)
}

func TestDo_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := New(ts.URL)
	_, _, err := c.do(context.Background(), http.MethodGet, ts.URL, "", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, err.Error(), "http request failed")
}

func TestDo_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(ts.URL)
	_, _, err := c.do(ctx, http.MethodGet, ts.URL, "", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
}

func TestDo_TracesRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{}")
	}))
	defer ts.Close()

	var buf bytes.Buffer
	c := New(ts.URL, WithLogger(logging.NewDebugLogger(&buf)))
	status, body, err := c.do(context.Background(), http.MethodGet, ts.URL+"/health", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "{}", string(body))

	out := buf.String()
	assert.Contains(t, out, "sending request")
	assert.Contains(t, out, "received response")
	assert.Contains(t, out, "method=GET")
}

func TestRawQuery(t *testing.T) {
	q := rawQuery(map[string]string{"a": "1", "b": "2", "c": "3"})

	assert.ElementsMatch(t,
		[]string{"a=1", "b=2", "c=3"},
		strings.Split(q, "&"),
	)
}

func TestRawQuery_NoPercentEncoding(t *testing.T) {
	q := rawQuery(map[string]string{"k": "a b+c"})
	assert.Equal(t, "k=a b+c", q)
}
