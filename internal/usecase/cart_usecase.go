package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vendora/internal/domain/model"
	repo "vendora/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CartUsecase はセッション単位のカート操作。
// カートは1セッション1レコードのJSON配列としてCartStoreに保存する。
// updateQtyに0以下は渡せない（削除はDeleteItemを使う約束。自動削除はしない）。
type CartUsecase struct {
	store repo.CartStore
}

// DI
func NewCartUsecase(store repo.CartStore) *CartUsecase {
	return &CartUsecase{store: store}
}

// CartResponse はカートと導出値。SubtotalとTotalItemsは毎回計算し直す。
type CartResponse struct {
	Items      []model.CartItem `json:"items"`
	Subtotal   model.Kobo       `json:"subtotal"`
	TotalItems int64            `json:"total_items"`
}

type AddItemInput struct {
	ID       string
	Name     string
	Price    model.Kobo
	Quantity int64 // 0なら1扱い
	ImageURL string
}

type UpdateQtyInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければ空）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionKey string) (CartResponse, error) {
	if sessionKey == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.loadItems(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}
	return buildResponse(items), nil
}

// AddItem はカートに追加（同一IDは数量加算、新規は末尾に追加）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionKey string, in AddItemInput) (CartResponse, error) {
	if sessionKey == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Quantity < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}

	items, err := u.loadItems(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	//同一商品は加算
	found := false
	for i := range items {
		if items[i].ID == in.ID {
			items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{
			ID:       in.ID,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: qty,
			ImageURL: in.ImageURL,
		})
	}

	if err := u.saveItems(ctx, sessionKey, items); err != nil {
		return CartResponse{}, err
	}
	return buildResponse(items), nil
}

// UpdateQty は数量変更。1未満は拒否する。
func (u *CartUsecase) UpdateQty(ctx context.Context, sessionKey string, itemID string, in UpdateQtyInput) (CartResponse, error) {
	if sessionKey == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	items, err := u.loadItems(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	found := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = in.Quantity
			found = true
			break
		}
	}
	if !found {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.saveItems(ctx, sessionKey, items); err != nil {
		return CartResponse{}, err
	}
	return buildResponse(items), nil
}

// DeleteItem は明細を丸ごと削除。
func (u *CartUsecase) DeleteItem(ctx context.Context, sessionKey string, itemID string) (CartResponse, error) {
	if sessionKey == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.loadItems(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	next := make([]model.CartItem, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == itemID {
			found = true
			continue
		}
		next = append(next, it)
	}
	if !found {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.saveItems(ctx, sessionKey, next); err != nil {
		return CartResponse{}, err
	}
	return buildResponse(next), nil
}

// Clear はカートを空にする（空配列を保存）。
func (u *CartUsecase) Clear(ctx context.Context, sessionKey string) (CartResponse, error) {
	if sessionKey == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items := []model.CartItem{}
	if err := u.saveItems(ctx, sessionKey, items); err != nil {
		return CartResponse{}, err
	}
	return buildResponse(items), nil
}

// ストアからカートを復元する。
// 壊れたJSON・配列でない値は空カート扱い（エラーにしない）。
func (u *CartUsecase) loadItems(ctx context.Context, sessionKey string) ([]model.CartItem, error) {
	raw, found, err := u.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	if !found {
		return []model.CartItem{}, nil
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []model.CartItem{}, nil
	}

	//数量0以下の明細は存在しない約束なので読み捨てる
	clean := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		clean = append(clean, it)
	}
	return clean, nil
}

// 変更のたびに即保存。
func (u *CartUsecase) saveItems(ctx context.Context, sessionKey string, items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	if err := u.store.Put(ctx, sessionKey, string(raw)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}

func buildResponse(items []model.CartItem) CartResponse {
	var subtotal model.Kobo
	var totalItems int64

	for _, it := range items {
		subtotal += it.Price.Mul(it.Quantity)
		totalItems += it.Quantity
	}

	return CartResponse{Items: items, Subtotal: subtotal, TotalItems: totalItems}
}
