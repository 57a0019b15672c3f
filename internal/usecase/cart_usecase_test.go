package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"vendora/internal/domain/model"
	infraRepo "vendora/internal/infra/repository"
	"vendora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Get(ctx context.Context, sessionKey string) (string, bool, error) {
	args := m.Called(ctx, sessionKey)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *CartStoreMock) Put(ctx context.Context, sessionKey string, raw string) error {
	args := m.Called(ctx, sessionKey, raw)
	return args.Error(0)
}

const sessionKey = "sess-1"

func jollof() usecase.AddItemInput {
	return usecase.AddItemInput{ID: "p1", Name: "Jollof Rice", Price: 150000, Quantity: 2}
}

func coke() usecase.AddItemInput {
	return usecase.AddItemInput{ID: "p2", Name: "Coke", Price: 50000, Quantity: 1}
}

// =====================
// 追加・導出値
// =====================

func TestCartUsecase_AddItem_NewAndDerived(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	out, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)

	out, err = uc.AddItem(ctx, sessionKey, coke())
	assert.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, model.Kobo(350000), out.Subtotal)
	assert.Equal(t, int64(3), out.TotalItems)
}

func TestCartUsecase_AddItem_SameIDIncrements(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "Jollof Rice", Price: 150000, Quantity: 2})
	assert.NoError(t, err)

	out, err := uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "Jollof Rice", Price: 150000, Quantity: 3})
	assert.NoError(t, err)

	//2+3=5で1明細のまま
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].Quantity)
}

func TestCartUsecase_AddItem_DefaultQuantityIsOne(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	out, err := uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "Jollof Rice", Price: 150000})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Items[0].Quantity)
}

func TestCartUsecase_AddItem_Invalid(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "", Name: "x", Price: 100})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "", Price: 100})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "x", Price: -1})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem(ctx, sessionKey, usecase.AddItemInput{ID: "p1", Name: "x", Price: 100, Quantity: -2})
	assertStatus(t, err, http.StatusBadRequest)
}

// =====================
// 数量変更・削除
// =====================

func TestCartUsecase_UpdateQty(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)

	out, err := uc.UpdateQty(ctx, sessionKey, "p1", usecase.UpdateQtyInput{Quantity: 7})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.Items[0].Quantity)
}

func TestCartUsecase_UpdateQty_RejectsZeroAndNegative(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)

	//0への変更は許可しない（削除はDeleteItem）
	_, err = uc.UpdateQty(ctx, sessionKey, "p1", usecase.UpdateQtyInput{Quantity: 0})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = uc.UpdateQty(ctx, sessionKey, "p1", usecase.UpdateQtyInput{Quantity: -3})
	assertStatus(t, err, http.StatusBadRequest)

	//元の数量は変わっていない
	out, err := uc.GetCart(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
}

func TestCartUsecase_UpdateQty_UnknownID(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.UpdateQty(ctx, sessionKey, "nope", usecase.UpdateQtyInput{Quantity: 1})
	assertStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_DeleteItem(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)
	_, err = uc.AddItem(ctx, sessionKey, coke())
	assert.NoError(t, err)

	out, err := uc.DeleteItem(ctx, sessionKey, "p1")
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ID)

	_, err = uc.DeleteItem(ctx, sessionKey, "p1")
	assertStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_Clear(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)

	out, err := uc.Clear(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, model.Kobo(0), out.Subtotal)
	assert.Equal(t, int64(0), out.TotalItems)
}

// =====================
// 復元（壊れたデータ）
// =====================

func TestCartUsecase_CorruptJSONIsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewCartStoreMemory()
	uc := usecase.NewCartUsecase(store)

	//壊れたJSON
	assert.NoError(t, store.Put(ctx, sessionKey, `{"items": [bro`))

	out, err := uc.GetCart(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)

	//配列でない値も空カート扱い
	assert.NoError(t, store.Put(ctx, sessionKey, `{"id":"p1"}`))

	out, err = uc.GetCart(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCartUsecase_ZeroQuantityRowsDroppedOnLoad(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewCartStoreMemory()
	uc := usecase.NewCartUsecase(store)

	assert.NoError(t, store.Put(ctx, sessionKey,
		`[{"id":"p1","name":"Jollof Rice","price":150000,"quantity":0},{"id":"p2","name":"Coke","price":50000,"quantity":1}]`))

	out, err := uc.GetCart(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ID)
}

func TestCartUsecase_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewCartStoreMemory()
	uc := usecase.NewCartUsecase(store)

	_, err := uc.AddItem(ctx, sessionKey, jollof())
	assert.NoError(t, err)

	//別のusecaseインスタンスでも同じストアなら同じカート
	uc2 := usecase.NewCartUsecase(store)
	out, err := uc2.GetCart(ctx, sessionKey)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "Jollof Rice", out.Items[0].Name)
}

// =====================
// ストア障害
// =====================

func TestCartUsecase_StoreErrorIs500(t *testing.T) {
	ctx := context.Background()

	store := new(CartStoreMock)
	store.On("Get", mock.Anything, sessionKey).Return("", false, errors.New("db down"))

	uc := usecase.NewCartUsecase(store)

	_, err := uc.GetCart(ctx, sessionKey)
	assertStatus(t, err, http.StatusInternalServerError)
}

func TestCartUsecase_EmptySessionKeyIsUnauthorized(t *testing.T) {
	uc := usecase.NewCartUsecase(infraRepo.NewCartStoreMemory())

	_, err := uc.GetCart(context.Background(), "")
	assertStatus(t, err, http.StatusUnauthorized)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok, "expected HTTPError, got %v", err)
	if ok {
		assert.Equal(t, status, he.Status)
	}
}
