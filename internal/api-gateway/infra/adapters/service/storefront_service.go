package service

import (
	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/api-gateway/core/ports"
)

// NewLocalStorefrontService runs the storefront inside the gateway process.
// It is meant for local development and tests; errors still carry gRPC codes
// because they come from the same server implementation.
func NewLocalStorefrontService(srv storefrontv1.StorefrontServer) ports.StorefrontService {
	return NewGRPCStorefrontService(storefrontv1.NewInProcessClient(srv))
}
