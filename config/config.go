package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var AppConfig *Config

// LoadConfig 讀取 .env（若存在）與環境變數
// defaultDBName 由各服務的 main 指定（fyyur / trivia 各自一個資料庫）
func LoadConfig(defaultDBName string) *Config {
	// .env 不存在時忽略錯誤，直接用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(defaultDBName),
	}

	return AppConfig
}

func LoadTestConfig(dbName string) *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   dbName,
		SSLMode:  "disable",
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", Mode: "test"},
		Database: *testConfig,
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("PORT", "8080"),
		Mode: getEnv("GIN_MODE", "debug"),
	}
}

func GetDatabaseConfig(defaultDBName string) DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", defaultDBName),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
