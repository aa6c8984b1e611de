package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected default region, got %q", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("retrieve credentials: %v", err)
		}
		if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
			t.Fatalf("expected local credentials, got %+v", creds)
		}
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("AWS_ACCESS_KEY_ID", "key")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "sa-east-1" {
			t.Fatalf("expected env region, got %q", cfg.Region)
		}
	})
}
