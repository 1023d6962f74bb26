package config

import "os"

// Environment selects which configuration rules apply. The service
// distinguishes four: development and test tolerate built-in defaults,
// while ci and production must supply secrets explicitly (see
// ValidateConfig).
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment. A CI runner announces
// itself through the conventional CI variable and wins over ENV; otherwise
// ENV picks the environment, and anything unrecognized falls back to
// development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch env := Environment(os.Getenv("ENV")); env {
	case Production, Test, Development:
		return env
	default:
		return Development
	}
}

func IsDevelopment() bool { return GetEnvironment() == Development }

func IsTest() bool { return GetEnvironment() == Test }

func IsCI() bool { return GetEnvironment() == CI }

func IsProduction() bool { return GetEnvironment() == Production }
