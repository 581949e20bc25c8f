package objects_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"object-gateway/core/objectstore"
	"object-gateway/core/storage"
	"object-gateway/core/storage/mocks"
	"object-gateway/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, cfg storage.Config) (*fiber.App, *mocks.Client) {
	t.Helper()
	mockClient := new(mocks.Client)
	store, err := objectstore.New(cfg, func(storage.Config) (storage.Client, error) {
		return mockClient, nil
	}, zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	feature := objects.NewFeature(store, zap.NewNop(), 10*time.Minute)
	require.True(t, feature.IsEnabled())
	assert.Equal(t, "objects", feature.Name())
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func testConfig() storage.Config {
	return storage.Config{
		Driver:          storage.DriverMinio,
		Endpoint:        "localhost:9000",
		Bucket:          "docs",
		PrefixPath:      "tenant",
		PutAttempts:     1,
		GetAttempts:     1,
		PresignAttempts: 2,
	}
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func notFound() error {
	return minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
}

func TestHandlePut(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("BucketExists", mock.Anything, "docs").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "docs", "tenant/reports/q1.txt", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest("PUT", "/objects/reports/q1.txt", strings.NewReader("hello"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "reports/q1.txt", body["key"])
	assert.Equal(t, float64(5), body["size"])
	mockClient.AssertExpectations(t)
}

func TestHandlePut_Failure(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("BucketExists", mock.Anything, "docs").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "docs", "tenant/a.txt", mock.Anything, int64(1)).Return(errors.New("connection reset"))

	resp, err := app.Test(httptest.NewRequest("PUT", "/objects/a.txt", strings.NewReader("x")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decode(t, resp.Body)["error"], "connection reset")
}

func TestHandleGet(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("GetObject", mock.Anything, "docs", "tenant/a.txt").
		Return(io.NopCloser(bytes.NewReader([]byte("content"))), nil)
	mockClient.On("GetObject", mock.Anything, "docs", "tenant/missing.txt").
		Return(nil, notFound())

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEOctetStream, resp.Header.Get(fiber.HeaderContentType))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "content", string(data))

	resp, err = app.Test(httptest.NewRequest("GET", "/objects/missing.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "object not found", decode(t, resp.Body)["error"])
}

func TestHandleGet_StorageFailure(t *testing.T) {
	cfg := testConfig()
	cfg.GetAttempts = 2
	app, mockClient := setupApp(t, cfg)
	mockClient.On("GetObject", mock.Anything, "docs", "tenant/a.txt").Return(nil, errors.New("connection reset"))

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "failed to read object", decode(t, resp.Body)["error"])
	mockClient.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestHandleGet_EscapedKey(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("GetObject", mock.Anything, "docs", "tenant/my file.txt").
		Return(io.NopCloser(bytes.NewReader([]byte("x"))), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/my%20file.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleRemove_AlwaysNoContent(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("RemoveObject", mock.Anything, "docs", "tenant/a.txt").Return(errors.New("access denied"))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleExists(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("StatObject", mock.Anything, "docs", "tenant/a.txt").Return(storage.ObjectInfo{Size: 3}, nil)
	mockClient.On("StatObject", mock.Anything, "docs", "tenant/b.txt").Return(nil, notFound())
	mockClient.On("StatObject", mock.Anything, "docs", "tenant/c.txt").Return(nil, errors.New("timeout"))

	tests := []struct {
		key    string
		exists bool
	}{
		{"a.txt", true},
		{"b.txt", false},
		{"c.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/exists/"+tt.key, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.exists, decode(t, resp.Body)["exists"])
		})
	}
}

func TestHandleStat(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("StatObject", mock.Anything, "docs", "tenant/a.txt").
		Return(storage.ObjectInfo{Key: "tenant/a.txt", Size: 7, ETag: "abc"}, nil)
	mockClient.On("StatObject", mock.Anything, "docs", "tenant/b.txt").Return(nil, notFound())

	resp, err := app.Test(httptest.NewRequest("GET", "/stat/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "a.txt", body["key"])
	assert.Equal(t, float64(7), body["size"])

	resp, err = app.Test(httptest.NewRequest("GET", "/stat/b.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlePresign(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("PresignedGetObject", mock.Anything, "docs", "tenant/a.txt", 90*time.Second).
		Return("http://localhost:9000/docs/tenant/a.txt?X-Amz-Signature=x", nil)
	mockClient.On("PresignedGetObject", mock.Anything, "docs", "tenant/b.txt", 10*time.Minute).
		Return("http://localhost:9000/docs/tenant/b.txt?X-Amz-Signature=y", nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/presign/a.txt?expires=90", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, decode(t, resp.Body)["url"], "tenant/a.txt")

	resp, err = app.Test(httptest.NewRequest("GET", "/presign/b.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandlePresign_Exhausted(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("PresignedGetObject", mock.Anything, "docs", "tenant/a.txt", mock.Anything).
		Return("", errors.New("signing failed"))

	resp, err := app.Test(httptest.NewRequest("GET", "/presign/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	mockClient.AssertNumberOfCalls(t, "PresignedGetObject", 2)
}

func TestHandlePresign_InvalidExpiry(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())

	for _, expires := range []string{"0", "-5", "604801", "2592000", "99999999999999999999", "soon"} {
		t.Run(expires, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/presign/a.txt?expires="+expires, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, decode(t, resp.Body)["error"], "expires must be between 1 and 604800 seconds")
		})
	}
	mockClient.AssertNotCalled(t, "PresignedGetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePresign_MaxExpiry(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("PresignedGetObject", mock.Anything, "docs", "tenant/a.txt", objectstore.MaxPresignExpiry).
		Return("http://localhost:9000/docs/tenant/a.txt?X-Amz-Expires=604800", nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/presign/a.txt?expires=604800", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleList(t *testing.T) {
	app, mockClient := setupApp(t, testConfig())
	mockClient.On("ListObjects", mock.Anything, "docs", "tenant/reports", false).
		Return([]storage.ObjectInfo{{Key: "tenant/reports/q1.txt", Size: 1}}, nil)
	mockClient.On("ListObjects", mock.Anything, "docs", "tenant/empty", true).
		Return(nil, nil)
	mockClient.On("ListObjects", mock.Anything, "docs", "tenant/broken", true).
		Return(nil, errors.New("list failed"))

	resp, err := app.Test(httptest.NewRequest("GET", "/list?dir=reports&recursive=false", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed []storage.ObjectInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "reports/q1.txt", listed[0].Key)

	resp, err = app.Test(httptest.NewRequest("GET", "/list?dir=empty", nil))
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(data))

	resp, err = app.Test(httptest.NewRequest("GET", "/list?dir=broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_CallerBucket(t *testing.T) {
	cfg := testConfig()
	cfg.Bucket = ""
	app, mockClient := setupApp(t, cfg)
	mockClient.On("RemoveObject", mock.Anything, "scratch", "tenant/a.txt").Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/a.txt?bucket=scratch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandler_MissingKey(t *testing.T) {
	app, _ := setupApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/exists/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
