package service

import (
	"os"

	"github.com/vaiicko/cafe-web/database"
)

const testDBPath = "test.db"

func setup() {
	os.Remove(testDBPath)
	database.InitDB(testDBPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove(testDBPath)
}
