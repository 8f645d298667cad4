package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainauth "github.com/curiogoods/catalog-api/internal/domain/auth"
	"github.com/curiogoods/catalog-api/internal/domain/branding"
	"github.com/curiogoods/catalog-api/internal/domain/model"
	"github.com/curiogoods/catalog-api/internal/mocks"
	"github.com/curiogoods/catalog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func eligibleItem(id string) model.CatalogItem {
	return model.CatalogItem{
		ID:         id,
		Handle:     "handle-" + id,
		Tags:       []string{"source:faire", "dept:objects"},
		ImageCount: 2,
	}
}

func newTestRouter(t *testing.T, source *mocks.MockItemSource, enrich branding.EnricherFunc) http.Handler {
	t.Helper()

	pipeline := branding.NewPipeline(branding.PipelineOptions{
		Evaluator: branding.DefaultRules(),
		Enricher:  enrich,
		Logger:    testLogger(),
	})
	svc := service.NewBrandingService(service.BrandingServiceOptions{
		Source:   source,
		Pipeline: pipeline,
		Logger:   testLogger(),
	})

	return NewRouter(RouterServices{
		Branding:  svc,
		Admission: &fakeGate{identity: domainauth.Identity{Email: "ops@curiogoods.com"}},
		Logger:    testLogger(),
	})
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer operator-token")
	return req
}

// sseEvents splits a raw SSE body into its event names, in order.
func sseEvents(t *testing.T, body string) []string {
	t.Helper()
	var names []string
	for _, frame := range strings.Split(strings.TrimSpace(body), "\n\n") {
		for _, line := range strings.Split(frame, "\n") {
			if name, ok := strings.CutPrefix(line, "event: "); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func TestRunEndpoint_StreamsFullRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockItemSource(ctrl)
	source.EXPECT().
		FetchItemsNeedingEnrichment(gomock.Any(), model.DefaultRunLimit).
		Return([]model.CatalogItem{eligibleItem("a"), eligibleItem("b")}, nil)

	router := newTestRouter(t, source, func(_ context.Context, item model.CatalogItem) (string, error) {
		return "fresh copy for " + item.ID, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/branding/run"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"start", "progress", "progress", "complete"}, sseEvents(t, rec.Body.String()))
	assert.Contains(t, rec.Body.String(), `"succeeded":2`)
}

func TestRunEndpoint_LimitQueryParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"in range", "/api/branding/run?limit=5", 5},
		{"explicit zero clamps to minimum", "/api/branding/run?limit=0", model.MinRunLimit},
		{"above maximum clamps down", "/api/branding/run?limit=1000", model.MaxRunLimit},
		{"omitted selects default", "/api/branding/run", model.DefaultRunLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockItemSource(ctrl)
			source.EXPECT().
				FetchItemsNeedingEnrichment(gomock.Any(), tt.want).
				Return(nil, nil)

			router := newTestRouter(t, source, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, tt.target))

			assert.Equal(t, []string{"start", "complete"}, sseEvents(t, rec.Body.String()))
		})
	}
}

func TestRunEndpoint_SourceFailureEndsStreamWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockItemSource(ctrl)
	source.EXPECT().
		FetchItemsNeedingEnrichment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("platform unreachable"))

	router := newTestRouter(t, source, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/branding/run"))

	// Headers were already streaming, so the failure arrives on the stream.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"start", "error"}, sseEvents(t, rec.Body.String()))
	assert.Contains(t, rec.Body.String(), "platform unreachable")
}

func TestRunEndpoint_RequiresAdmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockItemSource(ctrl)

	router := newTestRouter(t, source, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/branding/run", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreflightEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockItemSource(ctrl)
	source.EXPECT().
		FetchItemsNeedingEnrichment(gomock.Any(), model.DefaultRunLimit).
		Return([]model.CatalogItem{
			eligibleItem("a"),
			{ID: "printify", Tags: []string{"source:printify"}},
		}, nil)

	router := newTestRouter(t, source, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/branding/preflight"))

	require.Equal(t, http.StatusOK, rec.Code)

	var report model.PreflightReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Verdicts, 2)
	assert.Equal(t, 1, report.Eligible)
	assert.Equal(t, 1, report.Skipped)
	assert.True(t, report.Verdicts[0].WillProcess)
	assert.Equal(t, "Printify product", report.Verdicts[1].SkipReason)
}

func TestPreflightEndpoint_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockItemSource(ctrl)
	source.EXPECT().
		FetchItemsNeedingEnrichment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("platform unreachable"))

	router := newTestRouter(t, source, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/branding/preflight"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type healthCheckFunc func(ctx context.Context) error

func (f healthCheckFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHealthEndpoint(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		router := NewRouter(RouterServices{
			Branding:  brandingServiceForHealth(t),
			Admission: &fakeGate{},
			Health: map[string]HealthChecker{
				"platform": healthCheckFunc(func(context.Context) error { return nil }),
			},
			Logger: testLogger(),
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("degraded dependency", func(t *testing.T) {
		router := NewRouter(RouterServices{
			Branding:  brandingServiceForHealth(t),
			Admission: &fakeGate{},
			Health: map[string]HealthChecker{
				"cache": healthCheckFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			Logger: testLogger(),
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})
}

func brandingServiceForHealth(t *testing.T) *service.BrandingService {
	t.Helper()
	ctrl := gomock.NewController(t)
	return service.NewBrandingService(service.BrandingServiceOptions{
		Source: mocks.NewMockItemSource(ctrl),
		Pipeline: branding.NewPipeline(branding.PipelineOptions{
			Evaluator: branding.DefaultRules(),
			Logger:    testLogger(),
		}),
		Logger: testLogger(),
	})
}
