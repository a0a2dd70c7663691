package migrations

import (
	"strings"
	"testing"
)

func TestEmbeddedFSContainsInitialSchema(t *testing.T) {
	content, err := FS.ReadFile("001_initial_schema.sql")
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	sql := string(content)
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "CREATE TABLE pokemon", "CREATE TABLE moves"} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration missing %q", want)
		}
	}
}
