package assistant

import (
	"sort"
	"strings"

	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
)

func (a *Assistant) handleProductSearch(msg string) string {
	terms := extractSearchTerms(msg)
	results := a.searchProducts(terms)

	if len(results) == 0 {
		return a.render(locale.KeyNoProductsFound, map[string]string{
			"terms": strings.Join(terms, ", "),
		})
	}

	return a.formatProductResults(limitProducts(results, 3), locale.KeySearchResultsIntro)
}

func (a *Assistant) handleRecommendation() string {
	var picks []model.Product
	if a.user != nil && len(a.orders) > 0 {
		picks = a.personalizedRecommendations()
	} else {
		picks = a.popularProducts()
	}

	introKey := locale.KeyRecommendationsGuest
	params := map[string]string{}
	if a.user != nil {
		introKey = locale.KeyRecommendationsUser
		params["name"] = a.user.Name
	}
	return a.formatProductResults(picks, introKey, params)
}

func (a *Assistant) handleOrderInquiry() string {
	if a.user == nil {
		return a.render(locale.KeyLoginRequiredOrders, nil)
	}
	if len(a.orders) == 0 {
		return a.render(locale.KeyNoOrdersFound, nil)
	}

	// Most recent = first element as supplied by the backend.
	recent := a.orders[0]
	return a.render(locale.KeyOrderInfo, map[string]string{
		"order_id": recent.ID,
		"status":   recent.Status,
		"total":    formatPrice(recent.Total),
	})
}

func (a *Assistant) handlePricingInquiry(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) == 0 {
		return a.render(locale.KeyNoProductsForPricing, nil)
	}

	var b strings.Builder
	b.WriteString(a.render(locale.KeyPricingInfo, nil))
	b.WriteString("\n\n")
	for i, p := range limitProducts(products, 3) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• **" + p.Name + "**: ৳" + formatPrice(p.Price))
	}
	return b.String()
}

func (a *Assistant) handleCategoryBrowse(msg string) string {
	category := extractCategory(msg)

	var matches []model.Product
	for _, p := range a.products {
		if p.Category != "" && strings.Contains(strings.ToLower(p.Category), category) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return a.render(locale.KeyNoCategoryProducts, map[string]string{
			"category": category,
		})
	}

	return a.formatProductResults(limitProducts(matches, 3), locale.KeyCategoryBrowseIntro)
}

func (a *Assistant) handleComparison(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) < 2 {
		return a.render(locale.KeyInsufficientComparison, nil)
	}

	return a.render(locale.KeyProductComparison, map[string]string{
		"product1": products[0].Name,
		"price1":   formatPrice(products[0].Price),
		"product2": products[1].Name,
		"price2":   formatPrice(products[1].Price),
	})
}

func (a *Assistant) handleGreeting() string {
	if name := a.userName(); name != "" {
		return a.render(locale.KeyGreetingUser, map[string]string{"name": name})
	}
	return a.render(locale.KeyGreetingGuest, nil)
}

func (a *Assistant) handleWarranty(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) > 0 {
		return a.render(locale.KeyWarrantyWithProduct, map[string]string{
			"product": products[0].Name,
		})
	}
	return a.render(locale.KeyWarrantyGeneral, nil)
}

func (a *Assistant) handleSizeGuide(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) > 0 {
		category := strings.ToLower(products[0].Category)
		if strings.Contains(category, "fashion") || strings.Contains(category, "clothing") {
			return a.render(locale.KeySizeGuideClothing, nil)
		}
	}
	return a.render(locale.KeySizeGuideGeneral, nil)
}

func (a *Assistant) handleAvailability(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) == 0 {
		return a.render(locale.KeyAvailabilityGeneral, nil)
	}

	p := products[0]
	if p.InStock {
		return a.render(locale.KeyAvailabilityInStock, map[string]string{
			"product":  p.Name,
			"quantity": itoa(p.StockQuantity),
		})
	}
	return a.render(locale.KeyAvailabilityOutOfStock, map[string]string{
		"product": p.Name,
	})
}

func (a *Assistant) handleTechnicalSpecs(msg string) string {
	products := a.searchProducts(extractSearchTerms(msg))
	if len(products) == 0 {
		return a.render(locale.KeyTechnicalSpecsGeneral, nil)
	}
	return a.formatTechnicalSpecs(products[0])
}

func (a *Assistant) handleAccountHelp(msg string) string {
	switch {
	case strings.Contains(msg, "login") || strings.Contains(msg, "password"):
		return a.render(locale.KeyAccountLoginHelp, nil)
	case strings.Contains(msg, "register") || strings.Contains(msg, "signup"):
		return a.render(locale.KeyAccountRegisterHelp, nil)
	default:
		return a.render(locale.KeyAccountGeneralHelp, nil)
	}
}

// personalizedRecommendations picks the top rated products from the
// categories present in the user's order history.
func (a *Assistant) personalizedRecommendations() []model.Product {
	categories := make(map[string]bool)
	for _, order := range a.orders {
		for _, item := range order.Items {
			if item.Category != "" {
				categories[item.Category] = true
			}
		}
	}

	var matches []model.Product
	for _, p := range a.products {
		if categories[p.Category] {
			matches = append(matches, p)
		}
	}

	sortByRating(matches)
	return limitProducts(matches, 3)
}

// popularProducts returns the top rated products across the catalog.
func (a *Assistant) popularProducts() []model.Product {
	all := make([]model.Product, len(a.products))
	copy(all, a.products)
	sortByRating(all)
	return limitProducts(all, 3)
}

// sortByRating sorts descending by rating. The sort is stable so that
// rating ties preserve catalog order.
func sortByRating(products []model.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
}
