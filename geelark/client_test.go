package geelark

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mdmdirector/phonewatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PhoneStatus(t *testing.T) {
	var gotRequest types.StatusRequest
	var gotAuth, gotContentType string

	body := `{"code":0,"msg":"success","data":{"successDetails":[{"id":"p1","serialName":"Phone 1","status":3}],"failDetails":[{"id":"p2","code":42001}]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-abc", 0)
	resp, raw, err := client.PhoneStatus(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer bearer-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, []string{"p1", "p2"}, gotRequest.IDs)

	assert.Equal(t, body, string(raw))
	require.True(t, resp.IsSuccess())
	assert.Equal(t, "success", resp.Message())
	assert.Equal(t, "Phone 1", resp.Data.SuccessDetails[0].SerialName)
	assert.Equal(t, 42001, resp.Data.FailDetails[0].Code)
}

func TestClient_PhoneStatus_EmptyIDsSentAsArray(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"code":0,"data":{}}`))
	}))
	defer server.Close()

	_, _, err := NewClient(server.URL, "t", 0).PhoneStatus(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":[]}`, gotBody)
}

func TestClient_PhoneStatus_ErrorBodyIsDecoded(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":40001,"msg":"invalid token"}`))
	}))
	defer server.Close()

	resp, _, err := NewClient(server.URL, "bad", 0).PhoneStatus(context.Background(), []string{"p1"})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "invalid token", resp.Message())
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
}

func TestClient_PhoneStatus_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	resp, raw, err := NewClient(server.URL, "t", 0).PhoneStatus(context.Background(), []string{"p1"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "<html>bad gateway</html>", string(raw))
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClient_PhoneStatus_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp, raw, err := NewClient(url, "t", 0).PhoneStatus(context.Background(), []string{"p1"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Nil(t, raw)
	assert.Contains(t, err.Error(), "request phone status")
}

func TestClient_PhoneStatus_ErrorCodeWithNonObjectData(t *testing.T) {
	for _, body := range []string{
		`{"code":40001,"msg":"invalid token","data":[]}`,
		`{"code":40001,"msg":"invalid token","data":""}`,
	} {
		t.Run(body, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			resp, raw, err := NewClient(server.URL, "t", 0).PhoneStatus(context.Background(), []string{"p1"})
			require.NoError(t, err)
			assert.Equal(t, body, string(raw))
			assert.False(t, resp.IsSuccess())
			assert.Equal(t, "invalid token", resp.Message())
		})
	}
}

func TestClient_PhoneStatus_MalformedEntryKeepsOthers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":{"successDetails":[{"id":"p1","serialName":"a","status":"3"}],"failDetails":[{"id":"p2","code":42001}]}}`))
	}))
	defer server.Close()

	resp, _, err := NewClient(server.URL, "t", 0).PhoneStatus(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)
	require.True(t, resp.IsSuccess())
	assert.Equal(t, types.CodeUnknown, resp.Data.SuccessDetails[0].Status)
	assert.Equal(t, types.PhoneFailure{ID: "p2", Code: 42001}, resp.Data.FailDetails[0])
}
