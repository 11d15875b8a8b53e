package unit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"

	"zoo-service/db-utils/models"
	"zoo-service/routers"
	"zoo-service/test/mocks"
)

func TestGetStats(t *testing.T) {
	// the report is one ordered mapping, nested mappings keep their order too
	report := models.NewMapping()
	report.Set("animals", int64(3))
	report.Set("enclosures", int64(2))
	report.Set("zookeepers", int64(1))

	species := models.NewMapping()
	species.Set("eagle", int64(1))
	species.Set("lion", int64(2))
	report.Set("species", species)

	occupancy := models.NewMapping()
	occupancy.Set("1", int64(2))
	occupancy.Set("2", int64(1))
	report.Set("occupancy", occupancy)

	mockStats := new(mocks.MockStatsRepository)
	mockStats.On("GetStats").Return(report, nil)

	r := newTestEngine(nil, nil, nil, mockStats)
	r.GET("/stats", routers.GetStats)

	req, _ := http.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	// insertion order of the mapping must survive the trip through gin
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"animals":3,"enclosures":2,"zookeepers":1,`+
			`"species":{"eagle":1,"lion":2},"occupancy":{"1":2,"2":1}}`,
		w.Body.String())

	mockStats.AssertExpectations(t)
}

func TestGetStatsReportsFailure(t *testing.T) {
	mockStats := new(mocks.MockStatsRepository)
	mockStats.On("GetStats").Return(nil, errors.New("relation animals does not exist"))

	r := newTestEngine(nil, nil, nil, mockStats)
	r.GET("/stats", routers.GetStats)

	req, _ := http.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"relation animals does not exist"}`, w.Body.String())

	mockStats.AssertExpectations(t)
}
