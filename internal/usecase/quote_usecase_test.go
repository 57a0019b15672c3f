package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"vendora/internal/quote"
	"vendora/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestQuoteUsecase_GetQuote(t *testing.T) {
	uc := usecase.NewQuoteUsecase(quote.NewCalculator(nil, 0))

	out, err := uc.GetQuote(context.Background(), sessionKey, usecase.QuoteInput{
		Address: "No 4 Agbowo Road, Oye-Ekiti",
	})
	assert.NoError(t, err)
	assert.NotNil(t, out.Quote)

	//同じ入力は同じ見積
	out2, err := uc.GetQuote(context.Background(), sessionKey, usecase.QuoteInput{
		Address: "No 4 Agbowo Road, Oye-Ekiti",
	})
	assert.NoError(t, err)
	assert.Equal(t, out.Quote, out2.Quote)
}

func TestQuoteUsecase_ShortAddressIsNullQuote(t *testing.T) {
	uc := usecase.NewQuoteUsecase(quote.NewCalculator(nil, 0))

	out, err := uc.GetQuote(context.Background(), sessionKey, usecase.QuoteInput{Address: "No"})
	assert.NoError(t, err)
	assert.Nil(t, out.Quote)
}

func TestQuoteUsecase_EmptySessionKey(t *testing.T) {
	uc := usecase.NewQuoteUsecase(quote.NewCalculator(nil, 0))

	_, err := uc.GetQuote(context.Background(), "", usecase.QuoteInput{Address: "No 4 Agbowo Road"})
	assertStatus(t, err, http.StatusUnauthorized)
}
