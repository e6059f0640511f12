package apiclient

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/edu-platform/educlient/shared/errors"
)

// Defaults applied to list options left at their zero value.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortOrder = "desc"
)

const dateLayout = "2006-01-02"

func pageOrDefault(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

func limitOrDefault(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	return limit
}

// sortOrderOrDefault accepts "asc" or "desc" in any case; anything else is "desc".
func sortOrderOrDefault(order string) string {
	switch o := strings.ToLower(strings.TrimSpace(order)); o {
	case "asc", "desc":
		return o
	default:
		return DefaultSortOrder
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// requireID fails when value is blank and otherwise returns it escaped for use
// as a single path segment.
func requireID(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", internal_errors.Required(field)
	}
	return url.PathEscape(v), nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload maps the first validator failure to a RequiredFieldError
// or ValidationError.
func (c *Client) validatePayload(payload any) error {
	err := c.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return internal_errors.Required(fe.Field())
		}
		return &internal_errors.ValidationError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}
	return err
}
