package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CAFE_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CAFE_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CAFE_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CAFE_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "data/log"
	}
	return logFolderPath
}

// GetUploadFolder is where accepted picture uploads land. Served under /images.
func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("CAFE_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "public/images"
	}
	return uploadFolderPath
}

func GetListen() string {
	return os.Getenv("CAFE_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CAFE_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

// GetSessionSecret returns the cookie-store signing secret. Empty means the
// server generates a random one at startup (sessions then reset on restart).
func GetSessionSecret() string {
	return os.Getenv("CAFE_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("CAFE_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 60
	}
	return maxAge
}
