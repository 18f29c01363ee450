package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The unique indexes must be partial over live rows only. A plain unique
// index would let a soft-deleted row block recreation: deleting a user and
// registering the same email again, or re-earning a deleted badge, would
// fail on the constraint even though no visible row conflicts.
func TestUniqueIndexesIgnoreSoftDeletedRows(t *testing.T) {
	tests := []struct {
		name      string
		model     interface{}
		indexName string
		columns   []string
	}{
		{
			name:      "user email",
			model:     &User{},
			indexName: "idx_users_email",
			columns:   []string{"email"},
		},
		{
			name:      "profile owner",
			model:     &Profile{},
			indexName: "idx_profiles_user",
			columns:   []string{"user_id"},
		},
		{
			name:      "resume owner",
			model:     &Resume{},
			indexName: "idx_resumes_user",
			columns:   []string{"user_id"},
		},
		{
			name:      "badge per user and name",
			model:     &Badge{},
			indexName: "idx_badges_user_name",
			columns:   []string{"user_id", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			if err != nil {
				t.Fatalf("Failed to parse schema: %v", err)
			}

			var found *schema.Index
			for _, idx := range s.ParseIndexes() {
				if idx.Name == tt.indexName {
					found = idx
					break
				}
			}
			if found == nil {
				t.Fatalf("Index %q not defined", tt.indexName)
			}

			if found.Class != "UNIQUE" {
				t.Errorf("Expected index %q to be unique, got class %q", tt.indexName, found.Class)
			}
			if found.Where != "deleted_at IS NULL" {
				t.Errorf("Expected index %q to cover live rows only, got predicate %q", tt.indexName, found.Where)
			}

			if len(found.Fields) != len(tt.columns) {
				t.Fatalf("Expected %d indexed columns, got %d", len(tt.columns), len(found.Fields))
			}
			for i, column := range tt.columns {
				if found.Fields[i].DBName != column {
					t.Errorf("Expected column %d of %q to be %q, got %q", i, tt.indexName, column, found.Fields[i].DBName)
				}
			}
		})
	}
}
