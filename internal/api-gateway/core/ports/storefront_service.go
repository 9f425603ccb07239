package ports

import (
	"context"

	"github.com/jcmexdev/storefront/internal/api-gateway/core/domain/entity"
)

// StorefrontService is what the HTTP layer needs from the storefront.
// Errors carry a gRPC status code.
type StorefrontService interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	OpenSession(ctx context.Context, appearance string) (*entity.Screen, error)
	GetScreen(ctx context.Context, sessionID string) (*entity.Screen, error)
	CloseSession(ctx context.Context, sessionID string) error
	AddItem(ctx context.Context, sessionID string, productID int) (*entity.Screen, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*entity.Screen, error)
	OpenCart(ctx context.Context, sessionID string) (*entity.Screen, error)
	CloseCart(ctx context.Context, sessionID string) (*entity.Screen, error)
	Checkout(ctx context.Context, sessionID string) (*entity.Screen, error)
	ToggleTheme(ctx context.Context, sessionID string) (*entity.Screen, error)
}
