package geo_test

import (
	"testing"

	"vendora/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestResolver_NigerianTag(t *testing.T) {
	p := geo.NewResolver("en-NG", "Africa/Lagos").Resolve()

	assert.Equal(t, "NG", p.Country)
	assert.Equal(t, "NGN", p.Currency)
	assert.Equal(t, "en-NG", p.Language)
	assert.Equal(t, "Africa/Lagos", p.Timezone)
}

func TestResolver_OtherTagDefaultsToUSD(t *testing.T) {
	p := geo.NewResolver("en-US", "America/New_York").Resolve()

	assert.Equal(t, "", p.Country)
	assert.Equal(t, "USD", p.Currency)
}

func TestResolver_UnparsableTag(t *testing.T) {
	p := geo.NewResolver("not a tag!!", "").Resolve()

	//壊れたタグでもエラーにはしない
	assert.Equal(t, "", p.Country)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "not a tag!!", p.Language)
}

func TestResolver_CachesResult(t *testing.T) {
	r := geo.NewResolver("en-NG", "Africa/Lagos")

	p1 := r.Resolve()
	p2 := r.Resolve()

	assert.Equal(t, p1, p2)
}

func TestParseAcceptLanguage(t *testing.T) {
	assert.Equal(t, "en-NG", geo.ParseAcceptLanguage("en-NG,en;q=0.9"))
	assert.Equal(t, "en", geo.ParseAcceptLanguage(""))
	assert.Equal(t, "en", geo.ParseAcceptLanguage(";;;"))
}
