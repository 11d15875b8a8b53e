package mocks

import (
	"github.com/stretchr/testify/mock"

	"zoo-service/db-utils/models"
	inputModels "zoo-service/models"
)

// MockAnimalRepository - mock animal repository implementation
type MockAnimalRepository struct {
	mock.Mock
}

// mock methods to satisfy the repository interface

func (m *MockAnimalRepository) FindAll() ([]models.Animal, error) {
	args := m.Called()
	return args.Get(0).([]models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) GetCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) FindByID(id uint) (models.Animal, error) {
	args := m.Called(id)
	return args.Get(0).(models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindByEnclosure(enclosureID uint) ([]models.Animal, error) {
	args := m.Called(enclosureID)
	return args.Get(0).([]models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) Create(animal inputModels.Animal) (models.Animal, error) {
	args := m.Called(animal)
	return args.Get(0).(models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) Replace(id uint, animal inputModels.Animal) (models.Animal, error) {
	args := m.Called(id, animal)
	return args.Get(0).(models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) Delete(id uint) (models.Animal, error) {
	args := m.Called(id)
	return args.Get(0).(models.Animal), args.Error(1)
}

func (m *MockAnimalRepository) UpdateEnclosure(id uint, enclosureID uint) (models.Animal, error) {
	args := m.Called(id, enclosureID)
	return args.Get(0).(models.Animal), args.Error(1)
}

// MockEnclosureRepository - mock enclosure repository implementation
type MockEnclosureRepository struct {
	mock.Mock
}

func (m *MockEnclosureRepository) FindAll() ([]models.Enclosure, error) {
	args := m.Called()
	return args.Get(0).([]models.Enclosure), args.Error(1)
}

func (m *MockEnclosureRepository) GetCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnclosureRepository) FindByID(id uint) (models.Enclosure, error) {
	args := m.Called(id)
	return args.Get(0).(models.Enclosure), args.Error(1)
}

func (m *MockEnclosureRepository) Create(enclosure inputModels.Enclosure) (models.Enclosure, error) {
	args := m.Called(enclosure)
	return args.Get(0).(models.Enclosure), args.Error(1)
}

func (m *MockEnclosureRepository) Replace(id uint, enclosure inputModels.Enclosure) (models.Enclosure, error) {
	args := m.Called(id, enclosure)
	return args.Get(0).(models.Enclosure), args.Error(1)
}

func (m *MockEnclosureRepository) Delete(id uint) (models.Enclosure, error) {
	args := m.Called(id)
	return args.Get(0).(models.Enclosure), args.Error(1)
}

func (m *MockEnclosureRepository) UpdateVisitors(id uint, open bool) (models.Enclosure, error) {
	args := m.Called(id, open)
	return args.Get(0).(models.Enclosure), args.Error(1)
}

// MockZookeeperRepository - mock zookeeper repository implementation
type MockZookeeperRepository struct {
	mock.Mock
}

func (m *MockZookeeperRepository) FindAll() ([]models.Zookeeper, error) {
	args := m.Called()
	return args.Get(0).([]models.Zookeeper), args.Error(1)
}

func (m *MockZookeeperRepository) GetCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockZookeeperRepository) FindByID(id uint) (models.Zookeeper, error) {
	args := m.Called(id)
	return args.Get(0).(models.Zookeeper), args.Error(1)
}

func (m *MockZookeeperRepository) FindEnclosures(id uint) ([]models.Enclosure, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enclosure), args.Error(1)
}

func (m *MockZookeeperRepository) Create(zookeeper inputModels.Zookeeper) (models.Zookeeper, error) {
	args := m.Called(zookeeper)
	return args.Get(0).(models.Zookeeper), args.Error(1)
}

func (m *MockZookeeperRepository) Replace(id uint, zookeeper inputModels.Zookeeper) (models.Zookeeper, error) {
	args := m.Called(id, zookeeper)
	return args.Get(0).(models.Zookeeper), args.Error(1)
}

func (m *MockZookeeperRepository) Delete(id uint) (models.Zookeeper, error) {
	args := m.Called(id)
	return args.Get(0).(models.Zookeeper), args.Error(1)
}

// MockStatsRepository - mock reporting repository implementation
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStats() (*models.Mapping, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mapping), args.Error(1)
}
