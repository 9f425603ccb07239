package mappers

import (
	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/cart"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

func ProductsToWire(products []catalog.Product) []*storefrontv1.Product {
	out := make([]*storefrontv1.Product, len(products))
	for i, p := range products {
		out[i] = &storefrontv1.Product{
			Id:       p.ID,
			Name:     p.Name,
			Price:    cart.FormatPrice(p.Price),
			Image:    p.Image,
			Rating:   p.Rating,
			Category: p.Category,
		}
	}
	return out
}

func ScreenToWire(s domain.Screen) *storefrontv1.Screen {
	return &storefrontv1.Screen{
		SessionId:    s.SessionID,
		Title:        s.Title,
		SectionTitle: s.SectionTitle,
		Theme:        string(s.Theme),
		Palette: &storefrontv1.Palette{
			Background:    s.Palette.Background,
			Surface:       s.Palette.Surface,
			Text:          s.Palette.Text,
			TextSecondary: s.Palette.TextSecondary,
			Border:        s.Palette.Border,
			CardBg:        s.Palette.CardBg,
		},
		Badge:      s.Badge,
		CartOpen:   s.CartOpen,
		Toast:      &storefrontv1.Toast{Message: s.Toast.Message, Visible: s.Toast.Visible},
		LastHaptic: string(s.LastHaptic),
		Catalog:    mapCardsToWire(s.Catalog),
		Cart:       mapCartToWire(s.Cart),
	}
}

func mapCardsToWire(cards []domain.CatalogCard) []*storefrontv1.CatalogCard {
	out := make([]*storefrontv1.CatalogCard, len(cards))
	for i, c := range cards {
		out[i] = &storefrontv1.CatalogCard{
			ProductId: c.ProductID,
			Name:      c.Name,
			Image:     c.Image,
			Rating:    c.Rating,
			Price:     c.Price,
			Category:  c.Category,
		}
	}
	return out
}

func mapCartToWire(v domain.CartView) *storefrontv1.CartView {
	lines := make([]*storefrontv1.CartLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &storefrontv1.CartLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}
	return &storefrontv1.CartView{
		Lines:        lines,
		Empty:        v.Empty,
		EmptyTitle:   v.EmptyTitle,
		EmptyMessage: v.EmptyMessage,
		Subtotal:     v.Subtotal,
		Shipping:     v.Shipping,
		Total:        v.Total,
	}
}
