package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSale     Kind = "sale"
	KindShopping Kind = "shopping"
)

var (
	ErrInvalidKind     = errors.New("cart kind must be 'sale' or 'shopping'")
	ErrEmptyCode       = errors.New("product code is required")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrInvalidPrice    = errors.New("price must not be negative and have at most 2 decimal places")
)

const (
	// displayPlaces adalah presisi subtotal yang ditampilkan di konsol.
	displayPlaces = 1
	// PricePlaces sama dengan skala kolom NUMERIC(12,2) untuk harga.
	PricePlaces = 2
)

// ValidPrice false untuk harga negatif atau yang akan dibulatkan oleh kolom harga.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Equal(p.Round(PricePlaces))
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSale, KindShopping:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

// Line adalah satu item di cart; unik per ProductCode.
type Line struct {
	ProductID   int64           `json:"productId"`
	ProductCode string          `json:"productCode"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) Validate() error {
	if strings.TrimSpace(l.ProductCode) == "" {
		return ErrEmptyCode
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !ValidPrice(l.Price) {
		return ErrInvalidPrice
	}
	return nil
}

type Cart struct {
	OwnerID   int64     `json:"-"`
	Kind      Kind      `json:"kind"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(ownerID int64, kind Kind) *Cart {
	return &Cart{OwnerID: ownerID, Kind: kind, Lines: []Line{}}
}

func (c *Cart) indexOf(code string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductCode == code {
			return i
		}
	}
	return -1
}

// Upsert mengganti line dengan kode produk yang sama di posisinya, atau menambahkannya di akhir.
func (c *Cart) Upsert(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if i := c.indexOf(line.ProductCode); i >= 0 {
		c.Lines[i] = line
		return nil
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// Remove membuang line dengan kode produk tsb; tidak ada efek jika tidak ditemukan.
func (c *Cart) Remove(code string) bool {
	i := c.indexOf(code)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Total() decimal.Decimal {
	return Total(c.Lines)
}

func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Merge melipat lines lewat Upsert sehingga duplikat yang datang belakangan menang.
func Merge(lines []Line) ([]Line, error) {
	c := &Cart{Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if err := c.Upsert(l); err != nil {
			return nil, err
		}
	}
	return c.Lines, nil
}

func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPlaces)
}

// LineView dan View adalah bentuk cart yang dikirim ke konsol.
type LineView struct {
	Line
	Subtotal decimal.Decimal `json:"subtotal"`
}

type View struct {
	Kind      Kind            `json:"kind"`
	Lines     []LineView      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (c *Cart) View() View {
	lines := make([]LineView, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = LineView{Line: l, Subtotal: RoundDisplay(l.Subtotal())}
	}
	return View{Kind: c.Kind, Lines: lines, Total: c.Total(), UpdatedAt: c.UpdatedAt}
}

// LineInput adalah line sebelum di-resolve ke katalog; Price nil berarti harga katalog.
type LineInput struct {
	ProductID int64
	Quantity  int
	Price     *decimal.Decimal
}

// Inputs mengubah isi draft menjadi LineInput dengan harga yang sudah ditetapkan.
func (c *Cart) Inputs() []LineInput {
	out := make([]LineInput, len(c.Lines))
	for i, l := range c.Lines {
		price := l.Price
		out[i] = LineInput{ProductID: l.ProductID, Quantity: l.Quantity, Price: &price}
	}
	return out
}

type AddLineRequest struct {
	ProductID int64            `json:"productId" binding:"required,gt=0"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	Price     *decimal.Decimal `json:"price"` // kosong = harga produk
}
