package catalog

import (
	"catalog-web/core/upstream"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	loader  *ItemLoader[Item]
	handler *Handler
}

// NewFeature creates the catalog feature for the backend at baseURL.
func NewFeature(baseURL string, doer upstream.Doer, logger *zap.Logger) (*Feature, error) {
	pages, err := NewPages()
	if err != nil {
		return nil, err
	}
	l := NewItemLoader[Item](baseURL, doer, logger)
	return &Feature{loader: l, handler: NewHandler(l, pages, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Loader exposes the item loader for non-HTTP callers such as the CLI.
func (f *Feature) Loader() *ItemLoader[Item] {
	return f.loader
}
