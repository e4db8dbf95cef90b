package repositories

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The repositories and schema.sql describe the same tables; a column written
// by an INSERT or UPDATE here must exist in the DDL.
func TestSchemaDefinesRepositoryColumns(t *testing.T) {
	data, err := os.ReadFile("../../schema.sql")
	if err != nil {
		t.Fatalf("cannot read schema.sql: %v", err)
	}

	tables := map[string][]string{
		"users": {"username", "first_name", "last_name", "email", "password",
			"is_staff", "refresh_token", "expires_at", "created_at"},
		"profiles": {"user_id", "type", "email", "file", "location", "tel",
			"description", "working_hours", "created_at"},
		"offers": {"user_id", "title", "image", "description", "created_at",
			"updated_at"},
		"offer_details": {"offer_id", "title", "revisions",
			"delivery_time_in_days", "price", "features", "offer_type"},
		"orders": {"customer_user_id", "business_user_id", "offer_detail_id",
			"title", "revisions", "delivery_time_in_days", "price", "features",
			"offer_type", "status", "created_at"},
		"reviews": {"business_user_id", "reviewer_id", "rating", "description",
			"created_at", "updated_at"},
	}

	blockRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	blocks := map[string]string{}
	for _, m := range blockRe.FindAllStringSubmatch(string(data), -1) {
		blocks[m[1]] = m[2]
	}

	for table, columns := range tables {
		block, ok := blocks[table]
		if !ok {
			t.Fatalf("schema.sql does not define table %q", table)
		}
		for _, column := range columns {
			defined := false
			for _, line := range strings.Split(block, "\n") {
				if strings.HasPrefix(strings.TrimSpace(line), column+" ") {
					defined = true
					break
				}
			}
			if !defined {
				t.Errorf("schema.sql table %q is missing column %q", table, column)
			}
		}
	}
}
