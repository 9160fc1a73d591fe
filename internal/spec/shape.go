package spec

import (
	"fmt"
	"strconv"

	"pagespec_server/internal/types"
)

type kind int

const (
	kindString kind = iota
	kindBool
	kindObject
	kindArray
	kindFeatureItem
	kindFAQItem
)

// shape describes the JSON layout of a specification. Presence and primitive
// types are checked against it before the document is decoded, so a required
// string may be empty but may not be missing.
type shape struct {
	kind   kind
	fields []field
	elem   *shape
}

type field struct {
	name     string
	required bool
	shape    shape
}

func object(fields ...field) shape { return shape{kind: kindObject, fields: fields} }
func array(elem shape) shape       { return shape{kind: kindArray, elem: &elem} }

var (
	str = shape{kind: kindString}

	pageShape = object(
		field{"title", true, str},
		field{"subtitle", false, str},
		field{"theme", false, str},
		field{"accent", false, str},
		field{"themeTokens", false, object(
			field{"accent", false, str},
			field{"radius", false, str},
			field{"font", false, str},
		)},
		field{"hero", true, object(
			field{"headline", true, str},
			field{"subheadline", false, str},
			field{"ctaText", false, str},
		)},
		field{"features", true, object(
			field{"title", true, str},
			field{"items", true, array(shape{kind: kindFeatureItem})},
		)},
		field{"testimonials", false, object(
			field{"title", false, str},
			field{"items", true, array(object(
				field{"quote", true, str},
				field{"author", false, str},
				field{"avatar", false, str},
			))},
		)},
		field{"pricing", false, object(
			field{"title", false, str},
			field{"plans", true, array(object(
				field{"name", true, str},
				field{"price", true, str},
				field{"features", false, array(str)},
				field{"ctaText", false, str},
				field{"highlight", false, shape{kind: kindBool}},
			))},
		)},
		field{"faq", false, object(
			field{"title", false, str},
			field{"items", true, array(shape{kind: kindFAQItem})},
		)},
		field{"cta", true, object(
			field{"headline", true, str},
			field{"ctaText", true, str},
		)},
		field{"footer", true, object(
			field{"smallprint", true, str},
		)},
	)

	featureItemShape = object(
		field{"label", true, str},
		field{"icon", false, str},
	)
	faqItemShape = object(
		field{"q", false, str},
		field{"a", false, str},
		field{"question", false, str},
		field{"answer", false, str},
	)
)

// checkShape walks a decoded JSON value and reports every missing required
// key and every value of the wrong JSON type. Optional keys holding null are
// treated as absent.
func checkShape(value any) []types.Issue {
	var issues []types.Issue
	pageShape.check(value, "", &issues)
	return issues
}

func (s shape) check(value any, path string, issues *[]types.Issue) {
	switch s.kind {
	case kindString:
		if _, ok := value.(string); !ok {
			*issues = append(*issues, typeMismatch(path, "string", value))
		}
	case kindBool:
		if _, ok := value.(bool); !ok {
			*issues = append(*issues, typeMismatch(path, "boolean", value))
		}
	case kindArray:
		items, ok := value.([]any)
		if !ok {
			*issues = append(*issues, typeMismatch(path, "array", value))
			return
		}
		for i, item := range items {
			s.elem.check(item, path+"["+strconv.Itoa(i)+"]", issues)
		}
	case kindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			*issues = append(*issues, typeMismatch(path, "object", value))
			return
		}
		for _, f := range s.fields {
			child, present := obj[f.name]
			if !present || (child == nil && !f.required) {
				if f.required && !present {
					*issues = append(*issues, types.Issue{Path: join(path, f.name), Message: "is required"})
				}
				continue
			}
			f.shape.check(child, join(path, f.name), issues)
		}
	case kindFeatureItem:
		switch value.(type) {
		case string:
		case map[string]any:
			featureItemShape.check(value, path, issues)
		default:
			*issues = append(*issues, typeMismatch(path, "string or {label, icon}", value))
		}
	case kindFAQItem:
		faqItemShape.check(value, path, issues)
		obj, ok := value.(map[string]any)
		if !ok {
			return
		}
		if !(hasString(obj, "q") && hasString(obj, "a")) && !(hasString(obj, "question") && hasString(obj, "answer")) {
			*issues = append(*issues, types.Issue{Path: join(path, "question"), Message: "must provide either q/a or question/answer"})
		}
	}
}

func hasString(obj map[string]any, key string) bool {
	_, ok := obj[key].(string)
	return ok
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func typeMismatch(path, expected string, value any) types.Issue {
	if path == "" {
		path = rootPath
	}
	return types.Issue{Path: path, Message: fmt.Sprintf("expected %s, got %s", expected, valueKind(value))}
}

func valueKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
