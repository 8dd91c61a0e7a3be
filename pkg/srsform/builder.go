package srsform

import (
	"errors"
	"fmt"
	"strings"

	"srs-intake-be/pkg/domain"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("form validation failed")

// ValidationError is a local, pre-network rejection of the form. Message is
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Builder turns a FormState into a Payload.
type Builder struct {
	// StrictDomainRequired rejects the "Other" domain when no override text
	// was typed. When false the literal "Other" is submitted instead.
	StrictDomainRequired bool
}

func NewBuilder(strictDomainRequired bool) *Builder {
	return &Builder{StrictDomainRequired: strictDomainRequired}
}

// Build normalizes state into a Payload. Required fields are checked in a
// fixed order (target users, domain, authors, core features) and the first
// violation is returned. Build does not modify state.
func (b *Builder) Build(state *FormState) (*Payload, error) {
	targetUsers := CollectChecked(state.Checked(GroupTargetUsers), state.Get(FieldTargetUsersCustom))
	if len(targetUsers) == 0 {
		return nil, &ValidationError{Field: GroupTargetUsers, Message: "Please select at least one target user"}
	}

	selectedDomain, err := b.resolveDomain(state)
	if err != nil {
		return nil, err
	}

	compliance := CollectChecked(state.Checked(GroupComplianceRequirements), state.Get(FieldComplianceCustom))

	authors := NormalizeList(state.Get(FieldAuthor))
	if len(authors) == 0 {
		return nil, &ValidationError{Field: FieldAuthor, Message: "Please provide at least one author name"}
	}

	coreFeatures := NormalizeList(state.Get(FieldCoreFeatures))
	if len(coreFeatures) == 0 {
		return nil, &ValidationError{Field: FieldCoreFeatures, Message: "Please provide at least one core feature"}
	}

	return &Payload{
		ProjectIdentity: ProjectIdentity{
			ProjectName:      state.Trimmed(FieldProjectName),
			Author:           authors,
			Organization:     state.Trimmed(FieldOrganization),
			ProblemStatement: state.Trimmed(FieldProblemStatement),
			TargetUsers:      targetUsers,
		},
		SystemContext: SystemContext{
			ApplicationType: state.Get(FieldApplicationType),
			Domain:          selectedDomain,
		},
		FunctionalScope: FunctionalScope{
			CoreFeatures:    coreFeatures,
			PrimaryUserFlow: optionalText(state, FieldPrimaryUserFlow),
		},
		NonFunctionalRequirements: NonFunctionalRequirements{
			ExpectedUserScale:      state.Get(FieldExpectedUserScale),
			PerformanceExpectation: state.Get(FieldPerformanceExpectation),
		},
		SecurityAndCompliance: SecurityAndCompliance{
			AuthenticationRequired: isTrue(state, FieldAuthenticationRequired),
			SensitiveDataHandling:  isTrue(state, FieldSensitiveDataHandling),
			ComplianceRequirements: compliance,
		},
		TechnicalPreferences: TechnicalPreferences{
			PreferredBackend:     optionalText(state, FieldPreferredBackend),
			DatabasePreference:   optionalText(state, FieldDatabasePreference),
			DeploymentPreference: optionalText(state, FieldDeploymentPreference),
		},
		OutputControl: OutputControl{
			SRSDetailLevel: state.Get(FieldSRSDetailLevel),
		},
	}, nil
}

func (b *Builder) resolveDomain(state *FormState) (string, error) {
	selected := state.Get(FieldDomain)
	if selected != domain.OtherKey {
		return selected, nil
	}
	if custom := state.Trimmed(FieldDomainCustom); custom != "" {
		return custom, nil
	}
	if b.StrictDomainRequired {
		return "", &ValidationError{Field: FieldDomain, Message: "Please specify the domain"}
	}
	return domain.OtherKey, nil
}

func isTrue(state *FormState, field string) bool {
	return state.Get(field) == "true"
}

func optionalText(state *FormState, field string) *string {
	v := state.Trimmed(field)
	if v == "" {
		return nil
	}
	return &v
}

// Summary is a one-line description of a payload for logs.
func (p *Payload) Summary() string {
	return fmt.Sprintf("project=%q domain=%q features=%d users=%s",
		p.ProjectIdentity.ProjectName,
		p.SystemContext.Domain,
		len(p.FunctionalScope.CoreFeatures),
		strings.Join(p.ProjectIdentity.TargetUsers, "|"),
	)
}
