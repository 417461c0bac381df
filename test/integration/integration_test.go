//go:build integration

package integration

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/spendlite/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "spendlite",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("integration test suite failed")
	}
}
