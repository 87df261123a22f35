package ports

import "context"

// PackageManager installs JavaScript dependencies into a project.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install installs the dependencies declared by the manifest in dir.
	Install(ctx context.Context, dir string) error

	// Add installs the given packages into the project in dir.
	// Packages may be names or local paths.
	Add(ctx context.Context, dir string, packages []string) error
}
