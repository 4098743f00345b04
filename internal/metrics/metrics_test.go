package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTranslation(t *testing.T) {
	m := New()

	m.ObserveTranslation("http", OutcomeOK, 3)
	m.ObserveTranslation("http", OutcomeOK, 2)
	m.ObserveTranslation("live", OutcomeUnknownKey, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Translations.WithLabelValues("http", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Translations.WithLabelValues("live", OutcomeUnknownKey)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.RenderedLines))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.CatalogSize.Set(17)
	m.ObserveRequest("/translate", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "tlvconfig_catalog_parameters 17")
	assert.Contains(t, body, `tlvconfig_http_request_duration_seconds_count{code="200",route="/translate"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
