package validators

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-game-conf/models"
	"github.com/tidwall/gjson"
)

// Field name constants used to restrict validation of a [models.FeatureRoute]
// to a subset of its fields.
const (
	FieldGroup   = "group"
	FieldMethod  = "method"
	FieldPath    = "path"
	FieldHandler = "handler"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// FeatureValidator checks gameplay feature routes and request bodies.
type FeatureValidator struct {
}

func NewFeatureValidator() Validator {
	return &FeatureValidator{}
}

// Validate accepts a [models.FeatureRoute] (by value or pointer) or a
// json.RawMessage request body.
func (v *FeatureValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FeatureRoute:
		return v.validateRoute(ctx, value, fields...)
	case *models.FeatureRoute:
		return v.validateRoute(ctx, *value, fields...)

	case json.RawMessage:
		return v.validateBody(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *FeatureValidator) validateRoute(_ context.Context, route models.FeatureRoute, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroup, FieldMethod, FieldPath, FieldHandler}
	}

	for _, f := range fields {
		switch f {
		case FieldGroup:
			if !route.Group.Known() {
				return ErrUnknownGroup
			}
		case FieldMethod:
			if !isAllowedMethod(route.Method) {
				return ErrInvalidMethod
			}
		case FieldPath:
			if !isValidPath(route.Path) {
				return ErrInvalidPath
			}
		case FieldHandler:
			if route.Handle == nil {
				return ErrMissingHandler
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FeatureValidator) validateBody(body json.RawMessage) error {
	if !gjson.ValidBytes(body) {
		return ErrInvalidBody
	}
	return nil
}

func isAllowedMethod(method string) bool {
	for _, m := range allowedMethods {
		if method == m {
			return true
		}
	}
	return false
}

// isValidPath accepts static absolute paths only: the route tree has no
// parameters or wildcards.
func isValidPath(path string) bool {
	if len(path) < 2 || path[0] != '/' || strings.HasSuffix(path, "/") {
		return false
	}
	return !strings.ContainsAny(path, "{}*? ") && !strings.Contains(path, "//")
}
