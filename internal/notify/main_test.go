//go:build integration
// +build integration

package notify

import (
	"os"
	"testing"

	"task-manager-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m, "notify"))
}
