package service

import (
	"context"
	"fmt"

	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"

	"github.com/jcmexdev/storefront/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/storefront/internal/api-gateway/core/ports"
)

// GRPCStorefrontService talks to the storefront service through its client.
type GRPCStorefrontService struct {
	client storefrontv1.StorefrontClient
}

func NewGRPCStorefrontService(client storefrontv1.StorefrontClient) ports.StorefrontService {
	return &GRPCStorefrontService{client: client}
}

var _ ports.StorefrontService = (*GRPCStorefrontService)(nil)

func (s *GRPCStorefrontService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	res, err := s.client.ListProducts(ctx, &storefrontv1.ListProductsRequest{})
	if err != nil {
		return nil, fmt.Errorf("grpc ListProducts: %w", err)
	}
	return mapProductsToEntity(res.Products), nil
}

func (s *GRPCStorefrontService) OpenSession(ctx context.Context, appearance string) (*entity.Screen, error) {
	res, err := s.client.OpenSession(ctx, &storefrontv1.OpenSessionRequest{Appearance: appearance})
	return screenFrom("OpenSession", res, err)
}

func (s *GRPCStorefrontService) GetScreen(ctx context.Context, sessionID string) (*entity.Screen, error) {
	res, err := s.client.GetScreen(ctx, &storefrontv1.SessionRequest{SessionId: sessionID})
	return screenFrom("GetScreen", res, err)
}

func (s *GRPCStorefrontService) CloseSession(ctx context.Context, sessionID string) error {
	if _, err := s.client.CloseSession(ctx, &storefrontv1.SessionRequest{SessionId: sessionID}); err != nil {
		return fmt.Errorf("grpc CloseSession: %w", err)
	}
	return nil
}

func (s *GRPCStorefrontService) AddItem(ctx context.Context, sessionID string, productID int) (*entity.Screen, error) {
	res, err := s.client.AddItem(ctx, &storefrontv1.ProductActionRequest{SessionId: sessionID, ProductId: productID})
	return screenFrom("AddItem", res, err)
}

func (s *GRPCStorefrontService) RemoveItem(ctx context.Context, sessionID string, productID int) (*entity.Screen, error) {
	res, err := s.client.RemoveItem(ctx, &storefrontv1.ProductActionRequest{SessionId: sessionID, ProductId: productID})
	return screenFrom("RemoveItem", res, err)
}

func (s *GRPCStorefrontService) OpenCart(ctx context.Context, sessionID string) (*entity.Screen, error) {
	res, err := s.client.OpenCart(ctx, &storefrontv1.SessionRequest{SessionId: sessionID})
	return screenFrom("OpenCart", res, err)
}

func (s *GRPCStorefrontService) CloseCart(ctx context.Context, sessionID string) (*entity.Screen, error) {
	res, err := s.client.CloseCart(ctx, &storefrontv1.SessionRequest{SessionId: sessionID})
	return screenFrom("CloseCart", res, err)
}

func (s *GRPCStorefrontService) Checkout(ctx context.Context, sessionID string) (*entity.Screen, error) {
	res, err := s.client.Checkout(ctx, &storefrontv1.SessionRequest{SessionId: sessionID})
	return screenFrom("Checkout", res, err)
}

func (s *GRPCStorefrontService) ToggleTheme(ctx context.Context, sessionID string) (*entity.Screen, error) {
	res, err := s.client.ToggleTheme(ctx, &storefrontv1.SessionRequest{SessionId: sessionID})
	return screenFrom("ToggleTheme", res, err)
}

func screenFrom(method string, res *storefrontv1.ScreenResponse, err error) (*entity.Screen, error) {
	if err != nil {
		return nil, fmt.Errorf("grpc %s: %w", method, err)
	}
	scr := res.GetScreen()
	if scr == nil {
		return nil, fmt.Errorf("grpc %s: empty screen in response", method)
	}
	return mapScreenToEntity(scr), nil
}

func mapScreenToEntity(s *storefrontv1.Screen) *entity.Screen {
	out := &entity.Screen{
		SessionID:    s.SessionId,
		Title:        s.Title,
		SectionTitle: s.SectionTitle,
		Theme:        s.Theme,
		Badge:        s.Badge,
		CartOpen:     s.CartOpen,
		LastHaptic:   s.LastHaptic,
		Catalog:      make([]entity.Product, 0, len(s.Catalog)),
	}
	if p := s.Palette; p != nil {
		out.Palette = entity.Palette{
			Background:    p.Background,
			Surface:       p.Surface,
			Text:          p.Text,
			TextSecondary: p.TextSecondary,
			Border:        p.Border,
			CardBg:        p.CardBg,
		}
	}
	if t := s.Toast; t != nil {
		out.Toast = entity.Toast{Message: t.Message, Visible: t.Visible}
	}
	for _, c := range s.Catalog {
		out.Catalog = append(out.Catalog, entity.Product{
			ID:       c.ProductId,
			Name:     c.Name,
			Price:    c.Price,
			Image:    c.Image,
			Rating:   c.Rating,
			Category: c.Category,
		})
	}
	if c := s.Cart; c != nil {
		out.Cart = entity.Cart{
			Lines:        make([]entity.CartLine, 0, len(c.Lines)),
			Empty:        c.Empty,
			EmptyTitle:   c.EmptyTitle,
			EmptyMessage: c.EmptyMessage,
			Subtotal:     c.Subtotal,
			Shipping:     c.Shipping,
			Total:        c.Total,
		}
		for _, l := range c.Lines {
			out.Cart.Lines = append(out.Cart.Lines, entity.CartLine{
				ProductID: l.ProductId,
				Name:      l.Name,
				Image:     l.Image,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
	}
	return out
}

func mapProductsToEntity(products []*storefrontv1.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		out = append(out, entity.Product{
			ID:       p.Id,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Rating:   p.Rating,
			Category: p.Category,
		})
	}
	return out
}
