package httpx

type OpenSessionRequest struct {
	Appearance string `json:"appearance"`
}

type ProductResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

type PaletteResponse struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
	CardBg        string `json:"card_bg"`
}

type ToastResponse struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

type CartLineResponse struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	Empty        bool               `json:"empty"`
	EmptyTitle   string             `json:"empty_title,omitempty"`
	EmptyMessage string             `json:"empty_message,omitempty"`
	Subtotal     string             `json:"subtotal"`
	Shipping     string             `json:"shipping"`
	Total        string             `json:"total"`
}

type ScreenResponse struct {
	SessionID    string            `json:"session_id"`
	Title        string            `json:"title"`
	SectionTitle string            `json:"section_title"`
	Theme        string            `json:"theme"`
	Palette      PaletteResponse   `json:"palette"`
	Badge        int               `json:"badge"`
	CartOpen     bool              `json:"cart_open"`
	Toast        ToastResponse     `json:"toast"`
	LastHaptic   string            `json:"last_haptic,omitempty"`
	Catalog      []ProductResponse `json:"catalog"`
	Cart         CartResponse      `json:"cart"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
