// Package storefrontv1 is the wire contract of the storefront service:
// request/response messages, the gRPC service descriptor and its client.
// Messages are plain structs encoded with the JSON codec registered in this
// package.
package storefrontv1

type Product struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type OpenSessionRequest struct {
	Appearance string `json:"appearance,omitempty"`
}

type SessionRequest struct {
	SessionId string `json:"session_id"`
}

type ProductActionRequest struct {
	SessionId string `json:"session_id"`
	ProductId int    `json:"product_id"`
}

type CloseSessionResponse struct{}

type Palette struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
	CardBg        string `json:"card_bg"`
}

type Toast struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

type CatalogCard struct {
	ProductId int     `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Rating    float64 `json:"rating"`
	Price     string  `json:"price"`
	Category  string  `json:"category"`
}

type CartLine struct {
	ProductId int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type CartView struct {
	Lines        []*CartLine `json:"lines"`
	Empty        bool        `json:"empty"`
	EmptyTitle   string      `json:"empty_title,omitempty"`
	EmptyMessage string      `json:"empty_message,omitempty"`
	Subtotal     string      `json:"subtotal"`
	Shipping     string      `json:"shipping"`
	Total        string      `json:"total"`
}

type Screen struct {
	SessionId    string         `json:"session_id"`
	Title        string         `json:"title"`
	SectionTitle string         `json:"section_title"`
	Theme        string         `json:"theme"`
	Palette      *Palette       `json:"palette"`
	Badge        int            `json:"badge"`
	CartOpen     bool           `json:"cart_open"`
	Toast        *Toast         `json:"toast"`
	LastHaptic   string         `json:"last_haptic,omitempty"`
	Catalog      []*CatalogCard `json:"catalog"`
	Cart         *CartView      `json:"cart"`
}

type ScreenResponse struct {
	Screen *Screen `json:"screen"`
}

func (r *ScreenResponse) GetScreen() *Screen {
	if r == nil {
		return nil
	}
	return r.Screen
}
