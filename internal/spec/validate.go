package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pagespec_server/internal/types"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	featureItemType = reflect.TypeOf(FeatureItem{})
)

const rootPath = "(root)"

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Parse decodes raw JSON into a PageSpec and validates it. Unknown fields
// are ignored. Failures are returned as *types.ValidationError.
//
// Presence and JSON types are checked on the generic document first so every
// offending path is reported even when decoding into PageSpec would stop at
// the first bad value. Enum rules run on the decoded struct.
func Parse(raw []byte) (*PageSpec, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, types.NewValidationError([]types.Issue{{Path: rootPath, Message: "invalid JSON: " + err.Error()}}, err)
	}
	if issues := checkShape(doc); len(issues) > 0 {
		return nil, types.NewValidationError(issues, nil)
	}

	var s PageSpec
	if err := json.Unmarshal(raw, &s); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, types.NewValidationError([]types.Issue{typeIssue(typeErr)}, err)
		}
		return nil, types.NewValidationError([]types.Issue{{Path: rootPath, Message: err.Error()}}, err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseValue validates an already decoded JSON value such as a map.
func ParseValue(value any) (*PageSpec, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, types.NewValidationError([]types.Issue{{Path: rootPath, Message: err.Error()}}, err)
	}
	return Parse(raw)
}

// Validate runs the enum and array rules against s. Required strings are a
// presence rule on the JSON document, so an empty string passes here.
func Validate(s *PageSpec) error {
	if s == nil {
		return types.NewValidationError([]types.Issue{{Path: rootPath, Message: "specification is nil"}}, nil)
	}

	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return types.NewValidationError([]types.Issue{{Path: rootPath, Message: err.Error()}}, err)
	}

	issues := make([]types.Issue, 0, len(ves))
	for _, fe := range ves {
		issues = append(issues, types.Issue{Path: fieldPath(fe), Message: tagMessage(fe)})
	}
	return types.NewValidationError(issues, err)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func typeIssue(err *json.UnmarshalTypeError) types.Issue {
	path := err.Field
	if path == "" {
		path = rootPath
	}
	expected := err.Type.String()
	if err.Type == featureItemType {
		expected = "string or {label, icon}"
	}
	return types.Issue{Path: path, Message: fmt.Sprintf("expected %s, got %s", expected, err.Value)}
}
