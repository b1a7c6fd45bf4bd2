package models

// Customer represents a bank customer as returned by the backend
type Customer struct {
	ID                int64   `json:"customerId"`
	Name              string  `json:"name"`
	DOB               string  `json:"dob"`
	Gender            string  `json:"gender"`
	MaritalStatus     string  `json:"maritalStatus"`
	EducationalLevel  string  `json:"educationalLevel"`
	Occupation        string  `json:"occupation"`
	IncomeBracket     string  `json:"incomeBracket"`
	Location          string  `json:"location"`
	GeoCluster        string  `json:"geoCluster"`
	DigitalScore      float64 `json:"digitalScore"`
	RiskProfile       string  `json:"riskProfile"`
	PreferredLanguage string  `json:"preferredLanguage"`
	TenureDays        int     `json:"tenureDays"`
	ChurnRiskScore    float64 `json:"churnRiskScore"`
	CreatedAt         string  `json:"createdAt,omitempty"`
}

// CustomerPayload is the create/update body for a customer. Nil fields serialize to null.
type CustomerPayload struct {
	Name              *string  `json:"name"`
	DOB               *string  `json:"dob"`
	Gender            *string  `json:"gender"`
	MaritalStatus     *string  `json:"maritalStatus"`
	EducationalLevel  *string  `json:"educationalLevel"`
	Occupation        *string  `json:"occupation"`
	IncomeBracket     *string  `json:"incomeBracket"`
	Location          *string  `json:"location"`
	GeoCluster        *string  `json:"geoCluster"`
	DigitalScore      *float64 `json:"digitalScore"`
	RiskProfile       *string  `json:"riskProfile"`
	PreferredLanguage string   `json:"preferredLanguage"`
	TenureDays        int      `json:"tenureDays"`
	ChurnRiskScore    *float64 `json:"churnRiskScore"`
}
