package locale

// hindi mirrors the bengali table's coverage; missing keys fall back to
// English.
var hindi = map[Key]string{
	KeyWelcomeUser:  "नमस्ते {name}! 👋 मैं आपका शॉपिंग असिस्टेंट हूं। मैं उत्पाद खोजने, ऑर्डर ट्रैक करने और किसी भी प्रश्न का उत्तर देने में मदद कर सकता हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?",
	KeyWelcomeGuest: "नमस्ते! 👋 हमारे स्टोर में आपका स्वागत है। मैं आपका शॉपिंग असिस्टेंट हूं। मैं उत्पादों की खोज करने, कीमतों की तुलना करने और तत्काल सहायता प्रदान करने में मदद कर सकता हूं।",

	KeyGreetingUser:  "नमस्ते {name}! 👋 आपका स्वागत है! आज मैं आपको सही उत्पाद खोजने में कैसे मदद कर सकता हूं?",
	KeyGreetingGuest: "नमस्ते! 👋 हमारे स्टोर में आपका स्वागत है! मैं आपका शॉपिंग असिस्टेंट हूं। मैं आपकी कैसे मदद कर सकता हूं?",

	KeyTechnicalDifficulty: "मुझे खेद है, लेकिन मुझे कुछ तकनीकी कठिनाइयों का सामना करना पड़ रहा है। कृपया एक क्षण में फिर से प्रयास करें।",

	KeyShippingPolicy: `🚚 **शिपिंग और डिलीवरी की जानकारी**

**डिलीवरी क्षेत्र**: हम पूरे बांग्लादेश में डिलीवरी करते हैं
**डिलीवरी समय**:
   • ढाका: 1-2 कार्य दिवस
   • अन्य शहर: 2-4 कार्य दिवस
   • दूरदराज के क्षेत्र: 3-7 कार्य दिवस

**शिपिंग लागत**:
   • ৳1000 से अधिक के ऑर्डर पर मुफ्त शिपिंग
   • ढाका: ৳60
   • ढाका के बाहर: ৳100-150

और जानकारी चाहिए? पूछिए! 📦`,

	KeyReturnPolicy: `🔄 **वापसी और रिफंड नीति**

**वापसी की अवधि**: डिलीवरी के 7 दिन के भीतर
**शर्त**: उत्पाद अप्रयुक्त और मूल पैकेजिंग में होना चाहिए

**क्या वापस किया जा सकता है**:
   ✅ क्षतिग्रस्त या दोषपूर्ण उत्पाद
   ✅ गलत उत्पाद मिलने पर
   ✅ विवरण से मेल न खाने पर

**रिफंड प्रक्रिया**: 5-7 कार्य दिवसों में

कोई ऑर्डर के बारे में सवाल? मैं मदद करूंगा! 💙`,
}
