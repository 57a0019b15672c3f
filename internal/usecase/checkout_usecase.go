package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"vendora/internal/domain/model"
	"vendora/internal/geo"
	"vendora/internal/quote"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WhatsAppの「番号＋本文プリセット」エンドポイント。
const waBaseURL = "https://wa.me/"

// 通貨記号。未知のISOコードはコード表記で出す。
var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// CheckoutUsecase はカート＋配達見積＋客情報から
// 注文メッセージとWhatsAppリンクを組み立てる。
type CheckoutUsecase struct {
	cart               *CartUsecase
	calc               *quote.Calculator
	defaultVendorPhone string
}

// DI
func NewCheckoutUsecase(cart *CartUsecase, calc *quote.Calculator, defaultVendorPhone string) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:               cart,
		calc:               calc,
		defaultVendorPhone: defaultVendorPhone,
	}
}

type CheckoutInput struct {
	Name    string
	Phone   string
	Address string

	VendorPhone string
	Vendor      *model.LatLng

	// ロケール推定用（ヘッダ由来）
	Language string
	Timezone string
}

type CheckoutResponse struct {
	Message     string               `json:"message"`
	Link        string               `json:"link"`
	Quote       *model.DeliveryQuote `json:"quote"`
	Subtotal    model.Kobo           `json:"subtotal"`
	DeliveryFee model.Kobo           `json:"delivery_fee"`
	Total       model.Kobo           `json:"total"`
	Currency    string               `json:"currency"`
}

// Checkout は注文メッセージとリンクを作る。
func (u *CheckoutUsecase) Checkout(ctx context.Context, sessionKey string, in CheckoutInput) (CheckoutResponse, error) {
	if sessionKey == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "invalid phone")
	}
	if len(strings.TrimSpace(in.Address)) < 5 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "invalid address")
	}

	vendorPhone := in.VendorPhone
	if vendorPhone == "" {
		vendorPhone = u.defaultVendorPhone
	}
	if SanitizePhone(vendorPhone) == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "invalid vendor phone")
	}

	cart, err := u.cart.GetCart(ctx, sessionKey)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(cart.Items) == 0 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	//見積（失敗してもフォールバックで必ず何かしら出る）
	q := u.calc.Quote(ctx, in.Address, in.Vendor)

	//ロケールから表示通貨を決める
	profile := geo.NewResolver(in.Language, in.Timezone).Resolve()

	subtotal := cart.Subtotal
	var fee model.Kobo
	eta := 0
	if q != nil {
		fee = q.Total
		eta = q.EtaMinutes
	}
	total := subtotal + fee

	msg := BuildOrderSummary(OrderSummaryInput{
		Items:      cart.Items,
		Total:      total,
		Name:       in.Name,
		Phone:      in.Phone,
		Address:    in.Address,
		EtaMinutes: eta,
		Currency:   profile.Currency,
	})

	return CheckoutResponse{
		Message:     msg,
		Link:        WhatsAppLink(vendorPhone, msg),
		Quote:       q,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       total,
		Currency:    profile.Currency,
	}, nil
}

type OrderSummaryInput struct {
	Items      []model.CartItem
	Total      model.Kobo
	Name       string
	Phone      string
	Address    string
	EtaMinutes int // 0以下なら行ごと省略
	Currency   string
}

// BuildOrderSummary は注文内容を1本のテキストに組み立てる。
// ETAが無いときはETA行を出さない（空行も出さない）。
func BuildOrderSummary(in OrderSummaryInput) string {
	var b strings.Builder

	b.WriteString("New order via Vendora\n")
	b.WriteString("\n")
	b.WriteString("Name: " + in.Name + "\n")
	b.WriteString("Phone: " + in.Phone + "\n")
	b.WriteString("Address: " + in.Address + "\n")
	b.WriteString("\n")
	b.WriteString("Items:\n")
	for _, it := range in.Items {
		b.WriteString("- " + it.Name + " x" + itoa(it.Quantity) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Total: " + FormatKobo(in.Total, in.Currency))
	if in.EtaMinutes > 0 {
		b.WriteString("\nETA: ~" + itoa(int64(in.EtaMinutes)) + " mins")
	}

	return b.String()
}

// WhatsAppLink は番号を数字と先頭の+だけに削り、本文をパーセントエンコードして
// wa.me のディープリンクにする。
func WhatsAppLink(vendorPhone string, msg string) string {
	phone := SanitizePhone(vendorPhone)

	//encodeURIComponent相当（スペースは%20）
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")

	return waBaseURL + phone + "?text=" + text
}

// SanitizePhone は数字以外を落とす。先頭の+だけは残す。
func SanitizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatKobo は最小単位の金額をロケール込みで整形する。
// 100で割るのはここだけ（呼び出し側で割らない約束）。
func FormatKobo(amount model.Kobo, iso string) string {
	if iso == "" {
		iso = "NGN"
	}

	unit, err := currency.ParseISO(iso)
	if err != nil {
		unit = currency.MustParseISO("NGN")
	}

	sym, ok := currencySymbols[unit.String()]
	if !ok {
		sym = unit.String() + " "
	}

	major := float64(amount) / 100

	p := message.NewPrinter(language.English)
	return p.Sprintf("%s%.2f", sym, major)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
