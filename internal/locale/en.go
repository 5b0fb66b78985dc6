package locale

var english = map[Key]string{
	KeyWelcomeUser:  "Hello {name}! 👋 I'm your shopping assistant. I can help you find products, track orders, and answer any questions. How can I assist you today?",
	KeyWelcomeGuest: "Hello! 👋 Welcome to our store. I'm your shopping assistant. I can help you discover products, compare prices, and provide instant support. How can I help you today?",

	KeyTechnicalDifficulty: "I apologize, but I'm experiencing some technical difficulties. Please try again in a moment.",

	KeyNoProductsFound:      `I couldn't find any products matching "{terms}". Would you like me to show you our popular items instead?`,
	KeySearchResultsIntro:   "Here are the products I found for you:",
	KeyRecommendationsUser:  "Based on your shopping history, here are my recommendations for you, {name}:",
	KeyRecommendationsGuest: "Here are some popular products you might like:",
	KeyCategoryBrowseIntro:  "Here are some great products in this category:",

	KeyLoginRequiredOrders:  "To check your orders, please log in to your account first.",
	KeyNoOrdersFound:        "You don't have any orders yet. Would you like to browse our products?",
	KeyNoProductsForPricing: "I couldn't find products to show pricing for. Could you be more specific?",
	KeyNoCategoryProducts:   "I couldn't find products in the {category} category. Let me know what else you're looking for!",

	KeyInsufficientComparison: "I need at least 2 products to compare. Could you specify which products you'd like to compare?",
	KeySupportResponse:        "I'm here to help! For complex issues, you can also contact our support team at support@shopkori.com or call +880-XXXX-XXXX.",

	KeyGreetingUser:  "Hello {name}! 👋 Welcome back! How can I help you find the perfect product today?",
	KeyGreetingGuest: "Hello! 👋 Welcome to our store! I'm your shopping assistant. How can I help you today?",

	KeyDefaultResponse: "I'd be happy to help you! Could you tell me more about what you're looking for?",
	KeyMoreHelp:        "Would you like more details about any of these products?",
	KeyPricingInfo:     "Here are the current prices:",

	KeyOrderInfo:         "Your recent order {order_id} is currently {status}. Total amount: ৳{total}",
	KeyProductComparison: "Comparing **{product1}** (৳{price1}) vs **{product2}** (৳{price2}). Would you like detailed specifications?",

	KeyShippingPolicy: `🚚 **Shipping & Delivery Information**

**Delivery Areas**: We deliver nationwide in Bangladesh
**Delivery Time**:
   • Dhaka: 1-2 business days
   • Other cities: 2-4 business days
   • Remote areas: 3-7 business days

**Shipping Costs**:
   • FREE shipping on orders over ৳1000
   • Dhaka: ৳60
   • Outside Dhaka: ৳100-150

**Delivery Options**:
   • Standard delivery
   • Express delivery (extra charges apply)
   • Cash on Delivery (COD) available

**Tracking**: You'll receive SMS/email with tracking details once shipped.

Need help with a specific order? Just ask! 📦`,

	KeyReturnPolicy: `🔄 **Return & Refund Policy**

**Return Window**: 7 days from delivery date
**Condition**: Items must be unused, in original packaging

**What can be returned**:
   ✅ Damaged or defective items
   ✅ Wrong item received
   ✅ Items not as described

**What cannot be returned**:
   ❌ Used/worn items
   ❌ Custom/personalized products
   ❌ Electronics after 7 days

**Refund Process**:
   1. Contact us within 7 days
   2. Return the item (we arrange pickup)
   3. Refund processed within 5-7 business days

**How to return**: Call +880-XXXX-XXXX or email returns@shopkori.com

Questions about a specific order? I'm here to help! 💙`,

	KeyPaymentMethods: `💳 **Payment Methods We Accept**

**Mobile Banking**:
   📱 bKash - Instant payment
   📱 Nagad - Quick & secure
   📱 Rocket - Fast transfers

**Online Banking**:
   🏦 All major banks supported
   💻 Visa/MasterCard
   💻 American Express

**Cash Payment**:
   💰 Cash on Delivery (COD)
   📍 Pay at our physical store

**Security**: All payments are SSL encrypted and 100% secure.

**Payment Issues?** Contact our payment support team anytime! 🔒`,

	KeyWarrantyGeneral: `🛡️ **Warranty Information**

**Standard Warranty**: 1 year on all electronics
**Extended Warranty**: Available for purchase

**What's Covered**:
   ✅ Manufacturing defects
   ✅ Hardware malfunctions
   ✅ Free repair/replacement

**What's NOT Covered**:
   ❌ Physical damage
   ❌ Water damage
   ❌ Normal wear & tear

**Claim Process**:
   1. Contact us with order details
   2. Send photos if needed
   3. We arrange pickup/repair
   4. Free replacement if unrepairable

**Contact**: warranty@shopkori.com | +880-XXXX-XXXX

Which product warranty are you asking about? 🔧`,

	KeyWarrantyWithProduct: `🛡️ **Warranty for {product}**

This product comes with:
   • 1 year manufacturer warranty
   • Free repair/replacement for defects
   • 24/7 customer support

**To claim warranty**: Contact us with your order number and issue description.

Need more specific warranty details? Let me know! 🔧`,

	KeySizeGuideClothing: `📏 **Clothing Size Guide**

**How to Measure**:
   • Chest: Around fullest part
   • Waist: Around narrowest part
   • Hips: Around fullest part

**Size Chart**:
   • **XS**: Chest 32-34", Waist 26-28"
   • **S**: Chest 34-36", Waist 28-30"
   • **M**: Chest 36-38", Waist 30-32"
   • **L**: Chest 38-40", Waist 32-34"
   • **XL**: Chest 40-42", Waist 34-36"

**Tips**:
   • Measure with light clothing
   • Use a flexible measuring tape
   • When in doubt, size up

**Still unsure?** Contact us with your measurements! 👗`,

	KeySizeGuideGeneral: `📏 **Size & Measurement Guide**

For accurate sizing:
   1. Check product description for dimensions
   2. Compare with items you already own
   3. Contact us if measurements aren't clear

**Need help with specific product sizing?** Just tell me which item you're interested in!

**Measurement questions?** Our team can help: +880-XXXX-XXXX 📐`,

	KeyAvailabilityInStock: `✅ **{product}** is currently IN STOCK!

📦 **Available quantity**: {quantity} units
🚚 **Delivery**: Ships within 1-2 business days
💨 **Fast checkout**: Add to cart now to secure your item

Want to place an order? I can guide you through the process! 🛒`,

	KeyAvailabilityOutOfStock: `❌ **{product}** is currently OUT OF STOCK

📧 **Get notified**: We'll email you when it's back
🔄 **Restock estimate**: Usually 1-2 weeks
🔍 **Alternatives**: Let me suggest similar products

Would you like me to show you similar items that are available? 🔍`,

	KeyAvailabilityGeneral: `📦 **Stock Information**

Most of our products are in stock and ready to ship!

To check specific product availability:
   • Search for the product name
   • Check the product page for stock status
   • Ask me about any specific item

**Need immediate availability?** Tell me which product you're looking for! 🔍`,

	KeyBulkOrder: `📦 **Bulk & Wholesale Orders**

**Minimum Order**: 10+ pieces for bulk pricing
**Discounts Available**:
   • 10-50 pieces: 5% off
   • 51-100 pieces: 10% off
   • 100+ pieces: 15% off (custom quote)

**Business Benefits**:
   ✅ Priority support
   ✅ Flexible payment terms
   ✅ Custom packaging available
   ✅ Dedicated account manager

**Contact**: bulk@shopkori.com | +880-XXXX-XXXX
**Requirements**: Business license may be required for wholesale pricing

Ready to place a bulk order? Let me connect you with our business team! 🏢`,

	KeyTechnicalSpecsGeneral: `🔧 **Technical Specifications**

For detailed product specifications:
   1. Visit the product page
   2. Check the "Technical Details" section
   3. Download product manuals if available

**Need specific tech info?** Tell me which product you're interested in, and I'll provide detailed specifications!

**Technical support**: tech@shopkori.com | +880-XXXX-XXXX 💻`,

	KeyNeedMoreSpecs: "Need more detailed specifications? Visit the product page or contact our technical team!",

	KeyStoreLocation: `📍 **Store Locations & Contact**

**Main Store**:
   📍 123 Main Street, Dhaka-1000
   🕒 Open: 9:00 AM - 9:00 PM (7 days)
   📞 Phone: +880-2-XXXX-XXXX

**Branch Locations**:
   📍 Chittagong: City Center Mall
   📍 Sylhet: Zindabazar Shopping Complex
   📍 Khulna: Royal Shopping Center

**Online Support**:
   💬 Live Chat: Available 24/7
   📧 Email: info@shopkori.com

Planning to visit? Check our holiday hours first! 🏪`,

	KeyAccountLoginHelp: `🔐 **Login Help**

**Forgot Password?**
   1. Click "Forgot Password" on login page
   2. Enter your email address
   3. Check email for reset link
   4. Create new password

**Login Issues?**
   • Clear browser cache/cookies
   • Try different browser
   • Disable ad blockers

**Create Account**: Click "Register" if you don't have an account yet

Still having trouble? I'm here to help! 🆘`,

	KeyAccountRegisterHelp: `📝 **Create New Account**

**Registration Steps**:
   1. Click "Register" button
   2. Fill in: Name, Email, Phone, Password
   3. Verify email address
   4. Start shopping!

**Account Benefits**:
   ✅ Faster checkout
   ✅ Order tracking
   ✅ Wishlist & favorites
   ✅ Exclusive offers

**Privacy**: Your information is 100% secure and never shared

Ready to create your account? Click the register button! 🎉`,

	KeyAccountGeneralHelp: `👤 **Account Support**

**Common Account Tasks**:
   • Update profile information
   • Change password
   • View order history
   • Manage addresses

**Contact Account Support**:
   📞 Phone: +880-XXXX-XXXX
   📧 Email: accounts@shopkori.com
   💬 Live chat available 24/7

What specific account help do you need? 🤝`,
}
