package srsform

// Payload is the normalized submission sent to the document generator.
// Optional text fields are nil when the user left them blank.
type Payload struct {
	ProjectIdentity           ProjectIdentity           `json:"project_identity"`
	SystemContext             SystemContext             `json:"system_context"`
	FunctionalScope           FunctionalScope           `json:"functional_scope"`
	NonFunctionalRequirements NonFunctionalRequirements `json:"non_functional_requirements"`
	SecurityAndCompliance     SecurityAndCompliance     `json:"security_and_compliance"`
	TechnicalPreferences      TechnicalPreferences      `json:"technical_preferences"`
	OutputControl             OutputControl             `json:"output_control"`
}

type ProjectIdentity struct {
	ProjectName      string   `json:"project_name" validate:"required"`
	Author           []string `json:"author" validate:"min=1,dive,required"`
	Organization     string   `json:"organization"`
	ProblemStatement string   `json:"problem_statement" validate:"required"`
	TargetUsers      []string `json:"target_users" validate:"min=1,dive,required"`
}

type SystemContext struct {
	ApplicationType string `json:"application_type" validate:"required"`
	Domain          string `json:"domain" validate:"required"`
}

type FunctionalScope struct {
	CoreFeatures    []string `json:"core_features" validate:"min=1,dive,required"`
	PrimaryUserFlow *string  `json:"primary_user_flow"`
}

type NonFunctionalRequirements struct {
	ExpectedUserScale      string `json:"expected_user_scale" validate:"oneof=<100 100-1k 1k-100k >100k"`
	PerformanceExpectation string `json:"performance_expectation" validate:"oneof=Normal High Real-time"`
}

type SecurityAndCompliance struct {
	AuthenticationRequired bool     `json:"authentication_required"`
	SensitiveDataHandling  bool     `json:"sensitive_data_handling"`
	ComplianceRequirements []string `json:"compliance_requirements" validate:"dive,required"`
}

type TechnicalPreferences struct {
	PreferredBackend     *string `json:"preferred_backend"`
	DatabasePreference   *string `json:"database_preference"`
	DeploymentPreference *string `json:"deployment_preference"`
}

type OutputControl struct {
	SRSDetailLevel string `json:"srs_detail_level" validate:"oneof=High-level Technical Enterprise-grade"`
}
