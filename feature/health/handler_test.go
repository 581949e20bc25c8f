package health

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"object-gateway/core/objectstore"
	"object-gateway/core/storage"
	"object-gateway/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Healthy", nil, fiber.StatusOK},
		{"Unhealthy", errors.New("bucket unreachable"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			f := NewFeature(checkerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.err
			}), zap.NewNop(), time.Second)
			require.True(t, f.IsEnabled())
			require.NoError(t, f.Load(app))

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleHealth_WritesMarker(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "docs").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "docs").Return(nil)
	mockClient.On("PutObject", mock.Anything, "docs", "tenant/"+objectstore.HealthKey, mock.Anything, int64(len(objectstore.HealthMarker))).Return(nil)

	store, err := objectstore.New(storage.Config{Bucket: "docs", PrefixPath: "tenant"},
		func(storage.Config) (storage.Client, error) { return mockClient, nil }, zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, NewFeature(store, zap.NewNop(), 0).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockClient.AssertExpectations(t)
}
