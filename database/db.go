package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@localhost"
	defaultAdminPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.MenuItem{},
		&model.Drink{},
		&model.Review{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the administrator account on a fresh database. The password
// is stored hashed even for the default credential.
func initAdmin() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: hash,
		Role:     model.RoleAdmin,
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
