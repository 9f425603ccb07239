package entity

type Product struct {
	ID       int
	Name     string
	Price    string
	Image    string
	Rating   float64
	Category string
}

type Palette struct {
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	CardBg        string
}

type Toast struct {
	Message string
	Visible bool
}

type CartLine struct {
	ProductID int
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
}

type Cart struct {
	Lines        []CartLine
	Empty        bool
	EmptyTitle   string
	EmptyMessage string
	Subtotal     string
	Shipping     string
	Total        string
}

// Screen is what the client renders for a session: header, grid, overlay
// and the current notification.
type Screen struct {
	SessionID    string
	Title        string
	SectionTitle string
	Theme        string
	Palette      Palette
	Badge        int
	CartOpen     bool
	Toast        Toast
	LastHaptic   string
	Catalog      []Product
	Cart         Cart
}
