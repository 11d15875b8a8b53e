package repository

import (
	"database/sql"
	"strconv"

	"zoo-service/db-utils/models"
)

type StatsRepository interface {
	GetStats() (*models.Mapping, error)
}

// StatsRepositoryImpl - reporting queries run over a plain database/sql
// handle instead of gorm, the aggregations are easier to keep as raw SQL.
type StatsRepositoryImpl struct {
	db *sql.DB
}

func NewStatsRepositoryImpl(DB *sql.DB) StatsRepository {
	return &StatsRepositoryImpl{db: DB}
}

func (s *StatsRepositoryImpl) GetStats() (*models.Mapping, error) {
	stats := models.NewMapping()

	// active record totals per table
	var animals, enclosures, zookeepers int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM animals WHERE is_active = true`).Scan(&animals); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM enclosures WHERE is_active = true`).Scan(&enclosures); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM zookeepers WHERE is_active = true`).Scan(&zookeepers); err != nil {
		return nil, err
	}
	stats.Set("animals", animals)
	stats.Set("enclosures", enclosures)
	stats.Set("zookeepers", zookeepers)

	// animal count per species, ordered so the report is deterministic
	species, err := s.groupCounts(`
		SELECT species, COUNT(*) FROM animals
		WHERE is_active = true
		GROUP BY species ORDER BY species
	`)
	if err != nil {
		return nil, err
	}
	stats.Set("species", species)

	// occupancy per enclosure
	occupancy := models.NewMapping()
	rows, err := s.db.Query(`
		SELECT enclosure_id, COUNT(*) FROM animals
		WHERE is_active = true
		GROUP BY enclosure_id ORDER BY enclosure_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var enclosureID uint
		var count int64
		if err := rows.Scan(&enclosureID, &count); err != nil {
			return nil, err
		}
		occupancy.Set(strconv.FormatUint(uint64(enclosureID), 10), count)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	stats.Set("occupancy", occupancy)

	return stats, nil
}

func (s *StatsRepositoryImpl) groupCounts(query string) (*models.Mapping, error) {
	counts := models.NewMapping()
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts.Set(key, count)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
