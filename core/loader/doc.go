// Package loader registers features and mounts their routes.
//
// A feature is a self-contained module (handler, service, templates) exposed
// through the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. LoadAll skips disabled
// features and stops at the first Load failure.
package loader
