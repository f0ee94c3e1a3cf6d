package sqlite

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/teakimm/express-biztime/internal/domain/entity"
	"gorm.io/gorm"
)

// Init opens (or creates) the database at the given path and migrates
// the schema. Use ":memory:" for throwaway databases in tests.
//
// TranslateError is required so duplicate company codes come back as
// gorm.ErrDuplicatedKey instead of a driver-specific error string.
func Init(dbPath string) (*gorm.DB, error) {
	inMemory := dbPath == ":memory:"

	// Pragmas are per-connection in SQLite, so FK enforcement has to
	// ride the DSN; every connection the pool opens gets it applied.
	dsn := dbPath + "?_pragma=foreign_keys(1)"
	if inMemory {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if inMemory {
		// Recycling the sole connection would destroy an in-memory
		// database, so it never expires.
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&entity.Company{}, &entity.Invoice{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
