package integration_test

import (
	"log"
	"os"
	"testing"

	"tecla/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Printf("Failed to build tecla binary: %v", err)
		os.Exit(1)
	}

	code := m.Run()

	harness.CleanupBinary()
	os.Exit(code)
}
