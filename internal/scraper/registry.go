package scraper

import "strings"

// Registry resolves a classified domain to a site profile. Profiles are
// checked in definition order with substring containment, so more specific
// keys (mercadolibre.com.mx) must be listed before broader ones
// (mercadolibre.com). Unrecognized domains resolve to the generic profile.
// The registry is read-only after construction and safe for concurrent use.
type Registry struct {
	profiles []SiteProfile
	generic  SiteProfile
}

// NewRegistry creates a registry with the built-in site profiles.
// Supporting a new site means appending a profile here; the extraction
// logic itself never changes.
func NewRegistry() *Registry {
	return &Registry{
		profiles: []SiteProfile{
			{
				Domain: "amazon.com",
				TitleSelectors: []string{
					"#productTitle",
					".product-title",
					`[data-automation-id="product-title"]`,
					".a-size-large.a-size-base-plus",
					"h1.a-size-large",
				},
				PriceSelectors: []string{
					".a-price-whole",
					".a-price .a-offscreen",
					"#priceblock_dealprice",
					"#priceblock_saleprice",
					"#buy-now-button + .a-price .a-offscreen",
					".a-price-range .a-price .a-offscreen",
					`[data-automation-id="product-price"] .a-price .a-offscreen`,
					".a-price.a-text-price.a-size-medium.apexPriceToPay .a-offscreen",
				},
			},
			{
				Domain: "ebay.com",
				TitleSelectors: []string{
					"#x-title-label-lbl",
					".x-title-label-lbl",
					`h1[data-testid="lot-title"]`,
					".notranslate",
					"h1.it-ttl",
				},
				PriceSelectors: []string{
					".notranslate .notranslate",
					`[data-testid="lot-price"] .notranslate`,
					".u-flL.condText",
					"#prcIsum",
					".u-flL .notranslate",
				},
			},
			{
				// Listed before mercadolibre.com so the country site wins
				Domain: "mercadolibre.com.mx",
				TitleSelectors: []string{
					".ui-pdp-title",
					"h1.ui-pdp-title",
					".item-title__primary",
				},
				PriceSelectors: []string{
					".andes-money-amount__fraction",
					".price-tag-fraction",
					".ui-pdp-price__fraction",
				},
				Currency: "MXN",
			},
			{
				Domain: "mercadolibre.com",
				TitleSelectors: []string{
					".ui-pdp-title",
					"h1.ui-pdp-title",
					".item-title__primary",
					".item-title",
				},
				PriceSelectors: []string{
					".andes-money-amount__fraction",
					".price-tag-fraction",
					".ui-pdp-price__fraction",
					".price-tag .price-tag-fraction",
				},
			},
		},
		generic: SiteProfile{
			Domain: "generic",
			TitleSelectors: []string{
				"h1",
				".title",
				`[class*="title"]`,
				`[id*="title"]`,
			},
			PriceSelectors: []string{
				`[class*="price"]`,
				`[id*="price"]`,
				".price",
				".cost",
			},
		},
	}
}

// Lookup resolves a domain to its profile, falling back to the generic
// profile when no key matches. It never fails.
func (r *Registry) Lookup(domain string) SiteProfile {
	domain = strings.ToLower(domain)
	for _, profile := range r.profiles {
		if strings.Contains(domain, profile.Domain) {
			return profile
		}
	}
	return r.generic
}

// Generic returns the fallback profile
func (r *Registry) Generic() SiteProfile {
	return r.generic
}
