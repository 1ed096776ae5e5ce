package ports

// Verifier defines the interface for verifying that an environment is usable.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// MissingExecutables returns the names in dir that are absent or not executable.
	MissingExecutables(dir string, names []string) ([]string, error)
}
