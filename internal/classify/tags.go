package classify

import "strings"

// Tag is a (category, value) pair derived from company text.
type Tag struct {
	Category string
	Value    string
}

// Tag categories.
const (
	TagCategoryTechnology    = "technology"
	TagCategoryBusinessModel = "business_model"
	TagCategoryMarketFocus   = "market_focus"
	TagCategoryStage         = "stage"
)

type tagRule struct {
	Value    string
	Keywords []string
}

var technologyTagRules = []tagRule{
	{"SaaS", []string{"saas", "software as a service", "cloud software", "subscription software"}},
	{"AI/ML", []string{"artificial intelligence", " ai ", "machine learning", "deep learning", "neural network"}},
	{"Mobile", []string{"mobile app", "mobile application", "ios", "android", "mobile platform"}},
	{"Cloud", []string{"cloud computing", "cloud platform", "cloud infrastructure", "aws", "azure", "gcp"}},
	{"Blockchain", []string{"blockchain", "cryptocurrency", "crypto", "web3", "defi", "nft"}},
	{"IoT", []string{"iot", "internet of things", "connected devices", "smart devices"}},
	{"Cybersecurity", []string{"cybersecurity", "security", "infosec", "data protection", "encryption"}},
	{"DevOps", []string{"devops", "ci/cd", "continuous integration", "infrastructure as code"}},
}

var businessModelTagRules = []tagRule{
	{"B2B", []string{"b2b", "business to business", "enterprise software", "business software"}},
	{"B2C", []string{"b2c", "business to consumer", "consumer", "direct to consumer", "d2c"}},
	{"Marketplace", []string{"marketplace", "two-sided", "peer-to-peer", "p2p"}},
	{"Subscription", []string{"subscription", "recurring revenue", "saas"}},
	{"E-commerce", []string{"ecommerce", "e-commerce", "online retail", "online shopping"}},
}

var marketFocusTagRules = []tagRule{
	{"Enterprise", []string{"enterprise", "large business", "fortune 500"}},
	{"SMB", []string{"smb", "small business", "small and medium"}},
	{"Developer Tools", []string{"developer", "api", "sdk", "development platform"}},
	{"Healthcare", []string{"healthcare", "health", "medical", "hospital", "patient"}},
	{"Financial Services", []string{"fintech", "financial", "banking", "payments", "insurance"}},
}

// TagInput is the company text and state the tag rules match against.
type TagInput struct {
	Name             string
	Description      string
	IndustryCategory string
	Sector           string
	IsPublic         bool
	RevenueTier      string
}

// ExtractTags derives (category, value) tags from company text by
// keyword matching, plus stage tags from enrichment state. The result
// is deduplicated but otherwise unordered.
func ExtractTags(in TagInput) []Tag {
	searchText := " " + strings.ToLower(strings.Join([]string{
		in.Name, in.Description, in.IndustryCategory, in.Sector,
	}, " ")) + " "

	var tags []Tag
	seen := make(map[Tag]struct{})
	add := func(category, value string) {
		t := Tag{Category: category, Value: value}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}

	matchRules := func(category string, rules []tagRule) {
		for _, rule := range rules {
			for _, keyword := range rule.Keywords {
				if strings.Contains(searchText, keyword) {
					add(category, rule.Value)
					break
				}
			}
		}
	}

	matchRules(TagCategoryTechnology, technologyTagRules)
	matchRules(TagCategoryBusinessModel, businessModelTagRules)
	matchRules(TagCategoryMarketFocus, marketFocusTagRules)

	if in.IsPublic {
		add(TagCategoryStage, "Public")
	}
	if in.RevenueTier == "Unicorn" {
		add(TagCategoryStage, "Unicorn")
	}

	return tags
}
