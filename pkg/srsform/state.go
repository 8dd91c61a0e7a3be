package srsform

import (
	"net/url"
	"strings"
)

// Form field and element identifiers shared with the render surface.
const (
	FieldProjectName            = "project_name"
	FieldAuthor                 = "author"
	FieldOrganization           = "organization"
	FieldProblemStatement       = "problem_statement"
	FieldApplicationType        = "application_type"
	FieldDomain                 = "domain"
	FieldDomainCustom           = "domain_custom"
	FieldCoreFeatures           = "core_features"
	FieldPrimaryUserFlow        = "primary_user_flow"
	FieldExpectedUserScale      = "expected_user_scale"
	FieldPerformanceExpectation = "performance_expectation"
	FieldAuthenticationRequired = "authentication_required"
	FieldSensitiveDataHandling  = "sensitive_data_handling"
	FieldPreferredBackend       = "preferred_backend"
	FieldDatabasePreference     = "database_preference"
	FieldDeploymentPreference   = "deployment_preference"
	FieldSRSDetailLevel         = "srs_detail_level"

	GroupTargetUsers            = "target_users"
	FieldTargetUsersCustom      = "target_users_custom"
	GroupComplianceRequirements = "compliance_requirements"
	FieldComplianceCustom       = "compliance_custom"
)

// CheckboxGroups lists the multi-select groups of the form.
var CheckboxGroups = []string{GroupTargetUsers, GroupComplianceRequirements}

// FormState is a snapshot of the widget values of the form. A field missing
// from Fields is absent, which is distinct from present-but-empty.
type FormState struct {
	Fields map[string]string   `json:"fields" yaml:"fields"`
	Groups map[string][]string `json:"groups" yaml:"groups"`
}

func NewFormState() *FormState {
	return &FormState{
		Fields: make(map[string]string),
		Groups: make(map[string][]string),
	}
}

// FormStateFromValues reads a decoded form post. Keys named in CheckboxGroups
// become groups; for every other key the first value wins.
func FormStateFromValues(values url.Values) *FormState {
	s := NewFormState()
	for key, vals := range values {
		if isGroup(key) {
			s.Groups[key] = append([]string(nil), vals...)
			continue
		}
		if len(vals) > 0 {
			s.Fields[key] = vals[0]
		}
	}
	return s
}

func isGroup(name string) bool {
	for _, g := range CheckboxGroups {
		if g == name {
			return true
		}
	}
	return false
}

// Value returns the raw value of a field and whether it is present.
func (s *FormState) Value(name string) (string, bool) {
	if s == nil || s.Fields == nil {
		return "", false
	}
	v, ok := s.Fields[name]
	return v, ok
}

// Get returns the raw value of a field, "" when absent.
func (s *FormState) Get(name string) string {
	v, _ := s.Value(name)
	return v
}

// Trimmed returns the whitespace-trimmed value of a field.
func (s *FormState) Trimmed(name string) string {
	return strings.TrimSpace(s.Get(name))
}

// Set stores a field value.
func (s *FormState) Set(name, value string) {
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[name] = value
}

// Checked returns the checked values of a group in document order.
func (s *FormState) Checked(group string) []string {
	if s == nil || s.Groups == nil {
		return nil
	}
	return s.Groups[group]
}

// Check marks value as checked in group, keeping document order of calls.
func (s *FormState) Check(group, value string) {
	if s.Groups == nil {
		s.Groups = make(map[string][]string)
	}
	for _, v := range s.Groups[group] {
		if v == value {
			return
		}
	}
	s.Groups[group] = append(s.Groups[group], value)
}

// Uncheck clears value from group.
func (s *FormState) Uncheck(group, value string) {
	vals := s.Checked(group)
	out := vals[:0:0]
	for _, v := range vals {
		if v != value {
			out = append(out, v)
		}
	}
	if s.Groups != nil {
		s.Groups[group] = out
	}
}

// IsChecked reports whether value is checked in group.
func (s *FormState) IsChecked(group, value string) bool {
	for _, v := range s.Checked(group) {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (s *FormState) Clone() *FormState {
	c := NewFormState()
	if s == nil {
		return c
	}
	for k, v := range s.Fields {
		c.Fields[k] = v
	}
	for k, v := range s.Groups {
		c.Groups[k] = append([]string(nil), v...)
	}
	return c
}
