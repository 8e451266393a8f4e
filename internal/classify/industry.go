package classify

import "strings"

// industryCategory pairs a standard category with the keywords that map
// raw industry labels into it. Order matters: the first keyword hit wins,
// so broader buckets near the top shadow later ones (e.g. "automation"
// belongs to software before manufacturing).
type industryCategory struct {
	Name     string
	Keywords []string
}

var industryCategories = []industryCategory{
	{"Technology & Software", []string{
		"software", "saas", "enterprise software", "apps", "cloud computing",
		"information technology", "it services", "it consulting", "computer",
		"cloud infrastructure", "platform as a service", "paas", "iaas",
		"application software", "system software", "productivity tools",
		"collaboration software", "project management", "cloud security",
		"devops", "api", "web development", "mobile", "customer service",
		"crm", "service management", "helpdesk", "cloud management",
		"network hardware", "hardware", "ios", "android", "web services",
		"b2b", "vertical software", "server", "hosting", "internet",
		"enterprise applications", "enterprise resource planning", "erp",
		"application performance", "fleet management", "tech", "it", "web",
		"online platform", "automation", "a/b testing", "electronic equipment",
	}},
	{"Artificial Intelligence & Data", []string{
		"artificial intelligence", "ai", "machine learning", "analytics",
		"data analytics", "big data", "data science", "business intelligence",
		"predictive analytics", "data management", "database", "data infrastructure",
		"natural language processing", "nlp", "computer vision", "deep learning",
	}},
	{"Cybersecurity", []string{
		"cyber security", "cybersecurity", "security", "information security",
		"network security", "endpoint security", "identity management",
		"threat detection", "security software", "privacy", "data security",
	}},
	{"Healthcare & Biotech", []string{
		"health care", "healthcare", "biotechnology", "biopharma", "medical",
		"pharmaceuticals", "life sciences", "clinical trials", "medical devices",
		"health insurance", "telemedicine", "digital health", "wellness",
		"hospital", "diagnostics", "therapeutics", "genomics", "health tech",
		"healthtech", "fertility",
	}},
	{"Financial Services", []string{
		"financial services", "fintech", "banking", "finance", "insurance",
		"payments", "lending", "wealth management", "asset management",
		"capital markets", "trading", "investment", "accounting", "tax",
		"billing", "financial technology", "regtech", "insurtech",
		"payment systems", "wealth",
	}},
	{"E-commerce & Retail", []string{
		"e-commerce", "ecommerce", "retail", "shopping", "marketplace",
		"consumer goods", "fashion", "apparel", "clothing", "footwear",
		"luxury goods", "beauty", "cosmetics", "jewelry", "food delivery",
		"grocery", "consumer", "direct-to-consumer", "d2c",
		"commercial services", "business supplies",
	}},
	{"Marketing & Advertising", []string{
		"marketing", "advertising", "adtech", "marketing automation",
		"digital marketing", "social media marketing", "content marketing",
		"seo", "sem", "marketing analytics", "brand management",
		"public relations", "customer relationship management",
		"sales enablement", "ad server", "digital advertising",
	}},
	{"Media & Entertainment", []string{
		"media", "entertainment", "gaming", "video games", "streaming",
		"music", "video", "content", "publishing", "news", "social media",
		"social network", "creator economy", "influencer", "esports",
		"film", "graphic design", "sports", "leisure", "casual games",
	}},
	{"Real Estate & Construction", []string{
		"real estate", "construction", "property", "buildings", "proptech",
		"property management", "commercial real estate", "residential",
		"architecture", "engineering", "infrastructure", "facilities",
	}},
	{"Manufacturing & Industrial", []string{
		"manufacturing", "industrial", "supply chain", "logistics", "warehousing",
		"distribution", "procurement", "inventory management", "3d printing",
		"robotics", "iot", "internet of things", "smart manufacturing",
		"electronics", "advanced materials", "materials", "textiles", "machinery",
	}},
	{"Transportation & Automotive", []string{
		"transportation", "automotive", "mobility", "shipping",
		"freight", "delivery", "ridesharing", "car sharing", "electric vehicles",
		"ev", "autonomous vehicles", "drone", "aerospace", "aviation", "road",
	}},
	{"Energy & Sustainability", []string{
		"energy", "renewable energy", "clean energy", "solar", "wind",
		"sustainability", "cleantech", "climate tech", "carbon", "environmental",
		"green technology", "battery", "energy storage", "oil & gas",
		"oil and gas", "utilities",
	}},
	{"Education & HR", []string{
		"education", "edtech", "e-learning", "online learning", "training",
		"learning management", "human resources", "hr", "recruiting",
		"talent management", "workforce", "payroll", "employee engagement",
		"professional development", "corporate training", "employee benefits",
		"language learning", "employment", "career planning",
	}},
	{"Communication & Collaboration", []string{
		"communication", "collaboration", "messaging", "video conferencing",
		"unified communications", "voip", "telecommunications", "telecom",
		"networking", "workflow", "productivity", "workplace",
	}},
	{"Agriculture & Food", []string{
		"agriculture", "agtech", "farming", "food", "food and beverage",
		"restaurant", "hospitality", "travel", "tourism", "hotel",
		"animal feed", "catering", "brewing",
	}},
	{"Legal & Compliance", []string{
		"legal", "legaltech", "compliance", "regulatory", "contract management",
		"intellectual property", "patent", "governance", "risk management",
	}},
	{"Blockchain & Crypto", []string{
		"blockchain", "cryptocurrency", "crypto", "web3", "defi",
		"decentralized finance", "nft", "digital assets", "bitcoin", "ethereum",
	}},
	{"Government & Public Sector", []string{
		"government", "public sector", "civic tech", "govtech", "defense",
		"military", "national security", "public safety", "emergency",
	}},
	{"Consulting & Services", []string{
		"consulting", "professional services", "business services",
		"advisory", "management consulting", "strategy", "outsourcing",
		"information services", "holding companies",
	}},
}

// IndustryCategoryOther is the catch-all bucket.
const IndustryCategoryOther = "Other"

// IndustryCategoryNames lists every standard category, Other included,
// in classification order. Used to constrain the LLM classifier.
func IndustryCategoryNames() []string {
	names := make([]string, 0, len(industryCategories)+1)
	for _, c := range industryCategories {
		names = append(names, c.Name)
	}
	return append(names, IndustryCategoryOther)
}

// StandardizeIndustry maps a raw industry label (e.g. from the Swarm API)
// onto one of the standard categories by keyword containment; anything
// unmatched lands in Other.
func StandardizeIndustry(industryName string) string {
	industryLower := strings.ToLower(strings.TrimSpace(industryName))
	if industryLower == "" {
		return IndustryCategoryOther
	}

	for _, category := range industryCategories {
		for _, keyword := range category.Keywords {
			if strings.Contains(industryLower, keyword) {
				return category.Name
			}
		}
	}

	return IndustryCategoryOther
}

// IsStandardIndustryCategory reports whether name is one of the standard
// categories (Other included).
func IsStandardIndustryCategory(name string) bool {
	if name == IndustryCategoryOther {
		return true
	}
	for _, c := range industryCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}
