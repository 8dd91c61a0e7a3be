package srsform

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var contractValidator = newContractValidator()

func newContractValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ContractViolation is one field the document generator would reject.
type ContractViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (v ContractViolation) String() string {
	if v.Param != "" {
		return fmt.Sprintf("%s: must satisfy %s=%s", v.Field, v.Rule, v.Param)
	}
	return fmt.Sprintf("%s: must satisfy %s", v.Field, v.Rule)
}

// ContractViolations is returned by CheckContract.
type ContractViolations []ContractViolation

func (vs ContractViolations) Error() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "payload violates generator contract: " + strings.Join(parts, "; ")
}

// CheckContract reports fields the generator's input schema would reject
// (enumerated scales, detail levels, required text). It is advisory: Build
// does not call it.
func CheckContract(p *Payload) error {
	err := contractValidator.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ContractViolations, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ContractViolation{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
