// Package locale holds the localized response templates for the chat
// assistant and the fallback chain used to resolve them.
package locale

import (
	"errors"
	"strings"
)

// Locale is a supported response language. The set is fixed and closed.
type Locale string

const (
	English Locale = "en"
	Bengali Locale = "bn"
	Hindi   Locale = "hi"
)

// ErrUnknown is returned by Parse for a locale outside the supported set.
var ErrUnknown = errors.New("unsupported locale")

// Parse validates a locale string.
func Parse(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Bengali:
		return Bengali, nil
	case Hindi:
		return Hindi, nil
	default:
		return "", ErrUnknown
	}
}

// Supported lists the supported locales.
func Supported() []Locale {
	return []Locale{English, Bengali, Hindi}
}

// Key names a response template.
type Key string

const (
	KeyWelcomeUser             Key = "welcome_user"
	KeyWelcomeGuest            Key = "welcome_guest"
	KeyTechnicalDifficulty     Key = "technical_difficulty"
	KeyNoProductsFound         Key = "no_products_found"
	KeySearchResultsIntro      Key = "search_results_intro"
	KeyRecommendationsUser     Key = "recommendations_intro_user"
	KeyRecommendationsGuest    Key = "recommendations_intro_guest"
	KeyCategoryBrowseIntro     Key = "category_browse_intro"
	KeyLoginRequiredOrders     Key = "login_required_orders"
	KeyNoOrdersFound           Key = "no_orders_found"
	KeyNoProductsForPricing    Key = "no_products_for_pricing"
	KeyNoCategoryProducts      Key = "no_category_products"
	KeyInsufficientComparison  Key = "insufficient_products_comparison"
	KeySupportResponse         Key = "support_response"
	KeyGreetingUser            Key = "greeting_user"
	KeyGreetingGuest           Key = "greeting_guest"
	KeyDefaultResponse         Key = "default_response"
	KeyMoreHelp                Key = "more_help"
	KeyPricingInfo             Key = "pricing_info"
	KeyOrderInfo               Key = "order_info"
	KeyProductComparison       Key = "product_comparison"
	KeyShippingPolicy          Key = "shipping_policy"
	KeyReturnPolicy            Key = "return_policy"
	KeyPaymentMethods          Key = "payment_methods"
	KeyWarrantyGeneral         Key = "warranty_info_general"
	KeyWarrantyWithProduct     Key = "warranty_info_with_product"
	KeySizeGuideClothing       Key = "size_guide_clothing"
	KeySizeGuideGeneral        Key = "size_guide_general"
	KeyAvailabilityInStock     Key = "availability_in_stock"
	KeyAvailabilityOutOfStock  Key = "availability_out_of_stock"
	KeyAvailabilityGeneral     Key = "availability_check_general"
	KeyBulkOrder               Key = "bulk_order"
	KeyTechnicalSpecsGeneral   Key = "technical_specs_general"
	KeyNeedMoreSpecs           Key = "need_more_specs"
	KeyStoreLocation           Key = "store_location"
	KeyAccountLoginHelp        Key = "account_login_help"
	KeyAccountRegisterHelp     Key = "account_register_help"
	KeyAccountGeneralHelp      Key = "account_general_help"
)

// hardFallback is returned when a key is missing from every table.
const hardFallback = "I'm here to help!"

var tables = map[Locale]map[Key]string{
	English: english,
	Bengali: bengali,
	Hindi:   hindi,
}

// Render resolves key under loc with named-placeholder substitution.
// A key absent under loc falls back to English; a key absent there too
// resolves to a hard-coded default. Render never fails.
func Render(loc Locale, key Key, params map[string]string) string {
	tmpl, ok := tables[loc][key]
	if !ok {
		tmpl, ok = english[key]
	}
	if !ok {
		return hardFallback
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl
}
