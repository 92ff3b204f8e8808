package testutil

import (
	"context"
	"fmt"
	"log"

	"fyyur-trivia/config"
	"fyyur-trivia/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup 連到指定的測試資料庫，回傳連接池與 cleanup
func Setup(dbName string) (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig(dbName)

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := testDB.Ping(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping test database: %v", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}

	return testDB, cleanup, nil
}

// Truncate 清空指定資料表並重設序號
func Truncate(pool *pgxpool.Pool, tables ...string) error {
	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := pool.Exec(context.Background(), query); err != nil {
			return err
		}
	}
	return nil
}
