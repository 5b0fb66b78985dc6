package locale

// bengali intentionally covers only the highest-traffic keys; everything
// else falls back to English.
var bengali = map[Key]string{
	KeyWelcomeUser:  "হ্যালো {name}! 👋 আমি আপনার শপিং সহায়ক। আমি পণ্য খুঁজতে, অর্ডার ট্র্যাক করতে এবং যেকোনো প্রশ্নের উত্তর দিতে সাহায্য করতে পারি। আজ আমি কীভাবে আপনাকে সাহায্য করতে পারি?",
	KeyWelcomeGuest: "হ্যালো! 👋 আমাদের দোকানে স্বাগতম। আমি আপনার শপিং সহায়ক। আমি পণ্য আবিষ্কার করতে, দাম তুলনা করতে এবং তাৎক্ষণিক সহায়তা প্রদান করতে সাহায্য করতে পারি।",

	KeyGreetingUser:  "হ্যালো {name}! 👋 আবার স্বাগতম! আজ আমি কীভাবে আপনাকে নিখুঁত পণ্য খুঁজে পেতে সাহায্য করতে পারি?",
	KeyGreetingGuest: "হ্যালো! 👋 আমাদের দোকানে স্বাগতম! আমি আপনার শপিং সহায়ক। আমি কীভাবে আপনাকে সাহায্য করতে পারি?",

	KeyTechnicalDifficulty: "আমি দুঃখিত, কিন্তু আমি কিছু প্রযুক্তিগত সমস্যার সম্মুখীন হচ্ছি। অনুগ্রহ করে একটু পরে আবার চেষ্টা করুন।",

	KeyShippingPolicy: `🚚 **শিপিং ও ডেলিভারি তথ্য**

**ডেলিভারি এলাকা**: আমরা সারা বাংলাদেশে ডেলিভারি দিই
**ডেলিভারি সময়**:
   • ঢাকা: ১-২ কার্যদিবস
   • অন্যান্য শহর: ২-৪ কার্যদিবস
   • দূরবর্তী এলাকা: ৩-৭ কার্যদিবস

**শিপিং খরচ**:
   • ১০০০ টাকার উপরে অর্ডারে বিনামূল্যে শিপিং
   • ঢাকা: ৬০ টাকা
   • ঢাকার বাইরে: ১০০-১৫০ টাকা

আরো জানতে চান? প্রশ্ন করুন! 📦`,

	KeyReturnPolicy: `🔄 **রিটার্ন ও রিফান্ড নীতি**

**রিটার্ন সময়**: ডেলিভারির ৭ দিনের মধ্যে
**শর্ত**: পণ্য অব্যবহৃত ও মূল প্যাকেজিং-এ থাকতে হবে

**যা রিটার্ন করা যাবে**:
   ✅ ক্ষতিগ্রস্ত বা ত্রুটিপূর্ণ পণ্য
   ✅ ভুল পণ্য পেলে
   ✅ বর্ণনার সাথে মিল না থাকলে

**রিফান্ড প্রক্রিয়া**: ৫-৭ কার্যদিবসের মধ্যে

কোন অর্ডার নিয়ে প্রশ্ন? আমি সাহায্য করব! 💙`,
}
