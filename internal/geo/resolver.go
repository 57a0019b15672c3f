package geo

import (
	"sync"

	"vendora/internal/domain/model"

	"golang.org/x/text/language"
)

// 表示通貨のデフォルト。
const (
	currencyNigeria = "NGN"
	currencyDefault = "USD"
)

// Resolver はブラウザのシグナル（言語タグ・タイムゾーン）だけから
// ロケールを推定する。ネットワークは使わない。
// あくまでヒューリスティックで、検証済みのジオロケーションではない。
type Resolver struct {
	lang string
	tz   string

	once   sync.Once
	cached model.GeoProfile
}

// DI
func NewResolver(lang string, tz string) *Resolver {
	return &Resolver{lang: lang, tz: tz}
}

// Resolve は GeoProfile を返す。計算は一度だけで以降はキャッシュ。
func (r *Resolver) Resolve() model.GeoProfile {
	r.once.Do(func() {
		r.cached = resolve(r.lang, r.tz)
	})
	return r.cached
}

// 言語タグのregionがNGならNGN、それ以外はUSD。
func resolve(lang string, tz string) model.GeoProfile {
	p := model.GeoProfile{
		Language: lang,
		Timezone: tz,
		Currency: currencyDefault,
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return p
	}

	region, _ := tag.Region()
	if region.String() == "NG" {
		p.Country = "NG"
		p.Currency = currencyNigeria
	}

	return p
}

// ParseAcceptLanguage はAccept-Languageヘッダから最優先のタグを返す。
// パースできない場合は "en"。
func ParseAcceptLanguage(header string) string {
	if header == "" {
		return "en"
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	return tags[0].String()
}
