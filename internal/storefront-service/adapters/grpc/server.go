// Package grpc exposes the storefront service over the storefront.v1 contract.
package grpc

import (
	"context"

	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/storefront-service/adapters/grpc/mappers"
	"github.com/jcmexdev/storefront/internal/storefront-service/app"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

type Server struct {
	storefrontv1.UnimplementedStorefrontServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListProducts(ctx context.Context, _ *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsResponse, error) {
	return &storefrontv1.ListProductsResponse{Products: mappers.ProductsToWire(s.svc.Products(ctx))}, nil
}

func (s *Server) OpenSession(ctx context.Context, req *storefrontv1.OpenSessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.OpenSession(ctx, req.Appearance))
}

func (s *Server) GetScreen(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.GetScreen(ctx, req.SessionId))
}

func (s *Server) CloseSession(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.CloseSessionResponse, error) {
	if err := s.svc.CloseSession(ctx, req.SessionId); err != nil {
		return nil, toStatus(err)
	}
	return &storefrontv1.CloseSessionResponse{}, nil
}

func (s *Server) AddItem(ctx context.Context, req *storefrontv1.ProductActionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.AddItem(ctx, req.SessionId, req.ProductId))
}

func (s *Server) RemoveItem(ctx context.Context, req *storefrontv1.ProductActionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.RemoveItem(ctx, req.SessionId, req.ProductId))
}

func (s *Server) OpenCart(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.OpenCart(ctx, req.SessionId))
}

func (s *Server) CloseCart(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.CloseCart(ctx, req.SessionId))
}

func (s *Server) Checkout(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.Checkout(ctx, req.SessionId))
}

func (s *Server) ToggleTheme(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ScreenResponse, error) {
	return screenResponse(s.svc.ToggleTheme(ctx, req.SessionId))
}

func screenResponse(scr domain.Screen, err error) (*storefrontv1.ScreenResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &storefrontv1.ScreenResponse{Screen: mappers.ScreenToWire(scr)}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, app.ErrSessionNotFound), errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidAppearance):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
