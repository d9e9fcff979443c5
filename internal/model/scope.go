package model

// Scope carries the caller identity; every operation is restricted to the
// caller's own task set.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
