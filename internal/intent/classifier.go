// Package intent classifies user utterances into a closed set of intents
// using keyword containment matching.
package intent

import (
	"strings"
)

// Intent is the category a user utterance is classified into. It drives
// which response handler runs.
type Intent string

const (
	ProductSearch         Intent = "product_search"
	ProductRecommendation Intent = "product_recommendation"
	OrderInquiry          Intent = "order_inquiry"
	PricingInquiry        Intent = "pricing_inquiry"
	CategoryBrowse        Intent = "category_browse"
	ComparisonRequest     Intent = "comparison_request"
	SupportRequest        Intent = "support_request"
	Greeting              Intent = "greeting"
	ShippingPolicy        Intent = "shipping_policy"
	ReturnPolicy          Intent = "return_policy"
	PaymentMethods        Intent = "payment_methods"
	WarrantyInfo          Intent = "warranty_info"
	SizeGuide             Intent = "size_guide"
	AvailabilityCheck     Intent = "availability_check"
	BulkOrder             Intent = "bulk_order"
	TechnicalSpecs        Intent = "technical_specs"
	StoreLocation         Intent = "store_location"
	AccountHelp           Intent = "account_help"
	Default               Intent = "default"
)

type rule struct {
	intent   Intent
	triggers []string
}

// rules is evaluated top to bottom; the first intent with a matching
// trigger phrase wins. The order is part of the classifier's contract.
var rules = []rule{
	{ProductSearch, []string{"search", "find", "looking for", "show me", "need", "want", "available"}},
	{ProductRecommendation, []string{"recommend", "suggest", "best", "popular", "trending", "top rated"}},
	{OrderInquiry, []string{"order", "delivery", "shipping", "track", "status", "when will", "arrived"}},
	{PricingInquiry, []string{"price", "cost", "expensive", "cheap", "discount", "offer", "sale", "how much"}},
	{CategoryBrowse, []string{"category", "electronics", "watches", "fashion", "books", "sports", "home"}},
	{ComparisonRequest, []string{"compare", "vs", "versus", "difference", "better", "which one"}},
	{SupportRequest, []string{"help", "support", "problem", "issue", "contact", "complain"}},
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "thanks", "thank you"}},
	{ShippingPolicy, []string{"shipping", "delivery time", "how long", "when arrive", "shipping cost", "free delivery"}},
	{ReturnPolicy, []string{"return", "refund", "exchange", "money back", "not satisfied", "cancel order"}},
	{PaymentMethods, []string{"payment", "pay", "credit card", "bkash", "nagad", "cash on delivery", "cod"}},
	{WarrantyInfo, []string{"warranty", "guarantee", "repair", "replacement", "coverage", "defective"}},
	{SizeGuide, []string{"size", "measurement", "fit", "dimension", "length", "width", "height"}},
	{AvailabilityCheck, []string{"in stock", "available", "out of stock", "when restock", "inventory"}},
	{BulkOrder, []string{"bulk", "wholesale", "quantity", "large order", "business", "corporate"}},
	{TechnicalSpecs, []string{"specification", "specs", "features", "technical", "details", "model"}},
	{StoreLocation, []string{"store", "location", "address", "visit", "physical store", "branch"}},
	{AccountHelp, []string{"account", "login", "password", "register", "profile", "update info"}},
}

// Classify maps a lower-cased utterance to an Intent. An utterance that
// matches no trigger phrase, including the empty string, classifies to
// Default. When several intents match, the one declared first in the rule
// table wins; there is no scoring.
func Classify(utterance string) Intent {
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(utterance, trigger) {
				return r.intent
			}
		}
	}
	return Default
}
