package dto

// CrunchbaseAutocompleteResponse is the subset of the autocomplete
// payload the pipeline consumes.
type CrunchbaseAutocompleteResponse struct {
	Entities []struct {
		Identifier struct {
			Permalink string `json:"permalink"`
			Value     string `json:"value"`
		} `json:"identifier"`
	} `json:"entities"`
}

// CrunchbaseEntityResponse is the subset of the organization entity
// payload the pipeline consumes.
type CrunchbaseEntityResponse struct {
	Properties struct {
		ShortDescription    string `json:"short_description"`
		RevenueRange        string `json:"revenue_range"`
		NumEmployeesEnum    string `json:"num_employees_enum"`
		FoundedOn           struct {
			Value string `json:"value"`
		} `json:"founded_on"`
		LocationIdentifiers []struct {
			Value        string `json:"value"`
			LocationType string `json:"location_type"`
		} `json:"location_identifiers"`
	} `json:"properties"`
}

// CompanyDetails is the provider-neutral result of a Crunchbase lookup.
type CompanyDetails struct {
	Headquarters  string
	FoundedYear   string
	Description   string
	RevenueRange  string
	EmployeeCount string
}

// SwarmCompanyResponse is the subset of the Swarm company profile the
// pipeline consumes.
type SwarmCompanyResponse struct {
	Name                    string `json:"name"`
	Industry                string `json:"industry"`
	SizeClass               string `json:"size_class"`
	TotalFundingUSD         int64  `json:"total_funding_usd"`
	LastRoundType           string `json:"last_round_type"`
	LastRoundAmountUSD      int64  `json:"last_round_amount_usd"`
	OwnershipStatus         string `json:"ownership_status"`
	OwnershipStatusDetailed string `json:"ownership_status_detailed"`
	IsPublic                bool   `json:"is_public"`
	IsAcquired              bool   `json:"is_acquired"`
	IPODate                 string `json:"ipo_date"`
	StockExchange           string `json:"stock_exchange"`
	Summary                 string `json:"summary"`
}

// SwarmProfile is the provider-neutral result of a Swarm lookup.
type SwarmProfile struct {
	Industry      string
	IsPublic      bool
	IPODate       string
	StockExchange string
	Summary       string
}

// SerperSearchRequest is the search request body sent to SerperDev.
type SerperSearchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// SerperSearchResponse is the subset of the SerperDev response the
// pipeline consumes.
type SerperSearchResponse struct {
	Organic []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"organic"`
}
