package main

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fxServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/history":
			_, _ = w.Write([]byte(`{"pair":"` + r.URL.Query().Get("pair") + `","data":[
				{"date":"2024-01-01","rate":1300},
				{"date":"2024-01-02","rate":null},
				{"date":"2024-01-03","rate":"1,310.5"}]}`))
		case "/api/predict":
			_, _ = w.Write([]byte(`{"pair":"USD_KRW","horizon":2,"yhat":[
				{"date":"2024-01-03","value":1311},
				{"date":"2024-01-04","value":1312.25}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FXDASH_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("REDIS_HOST", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var rangeArgs = []string{"--base", "USD", "--target", "KRW", "--start", "2024-01-01", "--end", "2024-01-31"}

func TestHistoryCmd(t *testing.T) {
	srv, _ := fxServer(t)

	out, err := execute(t, append([]string{"history", "--base-url", srv.URL}, rangeArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "2024-01-01  1300.0000")
	assert.Contains(t, out, "2024-01-02  -")
	assert.Contains(t, out, "2024-01-03  1310.5000")
	assert.Contains(t, out, "USD_KRW: 2 data points")
}

func TestPredictCmd(t *testing.T) {
	srv, calls := fxServer(t)

	out, err := execute(t, append([]string{"predict", "--base-url", srv.URL, "--horizon", "2"}, rangeArgs...)...)
	require.NoError(t, err)

	assert.Equal(t, 2, *calls)
	assert.Contains(t, out, "Exchange rate")
	assert.Contains(t, out, "Forecast")
	assert.Contains(t, out, "1312.2500")
	assert.Contains(t, out, "USD_KRW: 2 data points, 2 forecast points")
}

func TestHistoryCmd_ValidationNeverCallsAPI(t *testing.T) {
	srv, calls := fxServer(t)

	_, err := execute(t, "history", "--base-url", srv.URL,
		"--base", "USD", "--target", "USD", "--start", "2024-01-01", "--end", "2024-01-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
	assert.Zero(t, *calls)
}

func TestChartCmd(t *testing.T) {
	srv, _ := fxServer(t)
	outPath := filepath.Join(t.TempDir(), "chart.png")

	_, err := execute(t, append([]string{"chart", "--base-url", srv.URL, "--out", outPath, "--width", "400", "--height", "240"}, rangeArgs...)...)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestCachePurgeCmd_WithoutRedis(t *testing.T) {
	_, err := execute(t, "cache", "purge", "--pair", "USD_KRW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
