package api_test

import (
	"testing"

	"github.com/limbo/hydration/internal/service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}
