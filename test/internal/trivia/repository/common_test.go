package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/repository"
	"fyyur-trivia/test/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.Setup("test_trivia")
	if err != nil {
		log.Fatalf("Failed to set up test database: %v", err)
	}
	testDB = pool

	log.Println("Running trivia repository tests...")
	code := m.Run()

	cleanup()
	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	if err := testutil.Truncate(testDB, "questions", "categories"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func createTestQuestion(t *testing.T, question, answer, category string) int {
	t.Helper()
	q := &model.Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: 1,
	}
	created, err := repository.NewQuestionRepository(testDB).Create(context.Background(), q)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return created.ID
}

func createTestCategory(t *testing.T, categoryType string) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(),
		"INSERT INTO categories (type) VALUES ($1) RETURNING id", categoryType).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return id
}
