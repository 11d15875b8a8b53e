package unit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"gorm.io/gorm"

	"zoo-service/db-utils/models"
	"zoo-service/db-utils/repository"
	inputModels "zoo-service/models"
	"zoo-service/routers"
	"zoo-service/test/mocks"
)

func TestGetAnimals(t *testing.T) {
	// mock database implementation
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("FindAll").Return([]models.Animal{
		{Model: gorm.Model{ID: 1, CreatedAt: testTime, UpdatedAt: testTime}, Name: "Lion", Species: "lion", ZookeeperID: 1, EnclosureID: 2, IsActive: true},
		{Model: gorm.Model{ID: 2, CreatedAt: testTime, UpdatedAt: testTime}, Name: "Eagle", Species: "eagle", ZookeeperID: 1, EnclosureID: 3, IsActive: true},
	}, nil)

	// create an engine instance with the mock repository wired in
	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.GET("/animals", routers.GetAnimals)

	// prepare a testing request
	req, _ := http.NewRequest("GET", "/animals", nil)
	w := httptest.NewRecorder()

	// perform a request
	r.ServeHTTP(w, req)

	// check correct serving
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`[{"id":1,"name":"Lion","species":"lion","zookeeper_id":1,"enclosure_id":2,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"},`+
			`{"id":2,"name":"Eagle","species":"eagle","zookeeper_id":1,"enclosure_id":3,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"}]`,
		w.Body.String())

	// ensure that indeed called all mock methods
	mockAnimals.AssertExpectations(t)
}

func TestGetAnimalCount(t *testing.T) {
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("GetCount").Return(int64(4), nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.HEAD("/animals", routers.GetAnimalCount)

	req, _ := http.NewRequest("HEAD", "/animals", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	// count travels in the custom item length header, not the body
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", w.Header().Get("X-Item-Length"))

	mockAnimals.AssertExpectations(t)
}

func TestGetAnimalByID(t *testing.T) {
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("FindByID", uint(5)).Return(models.Animal{
		Model:       gorm.Model{ID: 5, CreatedAt: testTime, UpdatedAt: testTime},
		Name:        "Simba",
		Species:     "lion",
		ZookeeperID: 1,
		EnclosureID: 2,
		IsActive:    true,
	}, nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.GET("/animals/:id", routers.GetAnimalByID)

	req, _ := http.NewRequest("GET", "/animals/5", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"id":5,"name":"Simba","species":"lion","zookeeper_id":1,"enclosure_id":2,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"}`,
		w.Body.String())

	mockAnimals.AssertExpectations(t)
}

func TestGetAnimalByIDInvalidID(t *testing.T) {
	r := newTestEngine(new(mocks.MockAnimalRepository), nil, nil, nil)
	r.GET("/animals/:id", routers.GetAnimalByID)

	req, _ := http.NewRequest("GET", "/animals/not-a-number", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"error":"ID must be a number"}`, w.Body.String())
}

func TestGetAnimalByIDNotFound(t *testing.T) {
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("FindByID", uint(9)).Return(models.Animal{},
		&repository.NotFoundError{Entity: "animal", Id: 9, When: time.Now()})

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.GET("/animals/:id", routers.GetAnimalByID)

	req, _ := http.NewRequest("GET", "/animals/9", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Animal not found"}`, w.Body.String())

	mockAnimals.AssertExpectations(t)
}

func TestCreateAnimal(t *testing.T) {
	input := inputModels.Animal{Name: "Rex", Species: "dog", ZookeeperID: 1, EnclosureID: 2}

	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("Create", input).Return(models.Animal{
		Model:       gorm.Model{ID: 7, CreatedAt: testTime, UpdatedAt: testTime},
		Name:        "Rex",
		Species:     "dog",
		ZookeeperID: 1,
		EnclosureID: 2,
		IsActive:    true,
	}, nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.POST("/animals", routers.CreateAnimal)

	req, _ := http.NewRequest("POST", "/animals",
		strings.NewReader(`{"name":"Rex","species":"dog","zookeeper_id":1,"enclosure_id":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"id":7,"name":"Rex","species":"dog","zookeeper_id":1,"enclosure_id":2,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"}`,
		w.Body.String())

	mockAnimals.AssertExpectations(t)
}

func TestCreateAnimalRejectsMissingName(t *testing.T) {
	r := newTestEngine(new(mocks.MockAnimalRepository), nil, nil, nil)
	r.POST("/animals", routers.CreateAnimal)

	// name carries a required binding
	req, _ := http.NewRequest("POST", "/animals", strings.NewReader(`{"species":"dog"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceAnimal(t *testing.T) {
	input := inputModels.Animal{Name: "Simba", Species: "lion", ZookeeperID: 2, EnclosureID: 4}

	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("Replace", uint(5), input).Return(models.Animal{
		Model:       gorm.Model{ID: 5, CreatedAt: testTime, UpdatedAt: testTime},
		Name:        "Simba",
		Species:     "lion",
		ZookeeperID: 2,
		EnclosureID: 4,
		IsActive:    true,
	}, nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.PUT("/animals/:id", routers.ReplaceAnimal)

	req, _ := http.NewRequest("PUT", "/animals/5",
		strings.NewReader(`{"name":"Simba","species":"lion","zookeeper_id":2,"enclosure_id":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"id":5,"name":"Simba","species":"lion","zookeeper_id":2,"enclosure_id":4,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"}`,
		w.Body.String())

	mockAnimals.AssertExpectations(t)
}

func TestDeleteAnimal(t *testing.T) {
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("Delete", uint(5)).Return(models.Animal{
		Model: gorm.Model{ID: 5, CreatedAt: testTime, UpdatedAt: testTime},
		Name:  "Simba",
	}, nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.DELETE("/animals/:id", routers.DeleteAnimal)

	req, _ := http.NewRequest("DELETE", "/animals/5", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	// soft delete answers with no body
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "", w.Body.String())

	mockAnimals.AssertExpectations(t)
}

func TestMoveAnimal(t *testing.T) {
	mockAnimals := new(mocks.MockAnimalRepository)
	mockAnimals.On("UpdateEnclosure", uint(5), uint(9)).Return(models.Animal{
		Model:       gorm.Model{ID: 5, CreatedAt: testTime, UpdatedAt: testTime},
		Name:        "Simba",
		Species:     "lion",
		ZookeeperID: 1,
		EnclosureID: 9,
		IsActive:    true,
	}, nil)

	r := newTestEngine(mockAnimals, nil, nil, nil)
	r.PATCH("/animals/:id/enclosure", routers.MoveAnimal)

	req, _ := http.NewRequest("PATCH", "/animals/5/enclosure", strings.NewReader(`{"enclosure_id":9}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"id":5,"name":"Simba","species":"lion","zookeeper_id":1,"enclosure_id":9,"is_active":true,`+
			`"created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z"}`,
		w.Body.String())

	mockAnimals.AssertExpectations(t)
}
