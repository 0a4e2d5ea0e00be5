package prof

import (
	"fmt"
	"net/http"

	"github.com/planet-nine-app/prof-go/internal/jsonx"
)

// profileEnvelope is the standard response wrapper for profile endpoints.
// Error stays a pointer so an explicit empty message from the server is
// distinguishable from an absent one.
type profileEnvelope struct {
	Success bool
	Profile *Profile
	Error   *string
	Details []string
}

// decodeEnvelope parses body as a well-formed envelope. success must be a
// present bool; profile, error and details may be absent or null but must
// match their types when given. details must be all strings.
func decodeEnvelope(body []byte) (*profileEnvelope, error) {
	var raw map[string]jsonx.RawMessage
	if err := jsonx.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	success, err := requiredBool(raw, "success")
	if err != nil {
		return nil, err
	}
	env := &profileEnvelope{Success: success}

	if msg, ok := raw["profile"]; ok {
		var p *Profile
		if err := jsonx.Unmarshal(msg, &p); err != nil {
			return nil, err
		}
		env.Profile = p
	}

	env.Error, err = optionalString(raw, "error")
	if err != nil {
		return nil, err
	}

	if msg, ok := raw["details"]; ok {
		var d *[]string
		if err := jsonx.Unmarshal(msg, &d); err != nil {
			return nil, err
		}
		if d != nil {
			env.Details = *d
		}
	}

	return env, nil
}

// parseOutcome tags which stage of the fallback chain produced a result.
type parseOutcome int

const (
	// parsedEnvelope: body was a well-formed envelope.
	parsedEnvelope parseOutcome = iota
	// parsedErrorShape: body was valid JSON with an "error" string field,
	// synthesized into a failure envelope.
	parsedErrorShape
	// parsedInvalidFormat: body was valid JSON but neither shape matched.
	parsedInvalidFormat
	// parsedUnreadable: body was not JSON at all.
	parsedUnreadable
)

// parseProfileResponse runs the ordered fallback chain over a response
// body: well-formed envelope first, then a minimal {"error": ...} shape,
// else a tagged failure. The envelope is nil unless the outcome is
// parsedEnvelope or parsedErrorShape.
func parseProfileResponse(body []byte) (*profileEnvelope, parseOutcome) {
	env, err := decodeEnvelope(body)
	if err == nil {
		return env, parsedEnvelope
	}

	var generic any
	if err := jsonx.Unmarshal(body, &generic); err != nil {
		return nil, parsedUnreadable
	}

	obj, ok := generic.(map[string]any)
	if !ok {
		return nil, parsedInvalidFormat
	}
	msg, ok := obj["error"].(string)
	if !ok {
		return nil, parsedInvalidFormat
	}

	return &profileEnvelope{
		Success: false,
		Error:   &msg,
		Details: stringDetails(obj["details"]),
	}, parsedErrorShape
}

// stringDetails extracts the string entries of a details array, dropping
// anything else silently. Returns nil when details is not an array.
func stringDetails(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	details := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			details = append(details, s)
		}
	}
	return details
}

// profileFromResponse maps a profile endpoint's status and body to a
// Profile or a typed error. notFoundMsg is the 404 default when the
// envelope carries no message; withValidation enables the 400 branch
// used by create and update.
func profileFromResponse(status int, body []byte, notFoundMsg string, withValidation bool) (*Profile, error) {
	env, outcome := parseProfileResponse(body)
	switch outcome {
	case parsedInvalidFormat:
		return nil, &ServiceError{Message: fmt.Sprintf("Invalid response format: %s", body)}
	case parsedUnreadable:
		return nil, &ServiceError{Message: fmt.Sprintf("Could not parse response: %s", body)}
	}

	if !env.Success {
		return nil, envelopeFailure(status, env, notFoundMsg, withValidation)
	}
	if env.Profile == nil {
		return nil, &ServiceError{Message: "No profile in response"}
	}
	return env.Profile, nil
}

// envelopeFailure turns a failed envelope into the typed error for its
// HTTP status. A 400 with any details list, even an empty one, becomes a
// ValidationError when withValidation is set.
func envelopeFailure(status int, env *profileEnvelope, notFoundMsg string, withValidation bool) error {
	if withValidation && status == http.StatusBadRequest {
		if env.Details != nil {
			return &ValidationError{Errors: env.Details}
		}
		return &ServiceError{Message: orDefault(env.Error, "Validation failed")}
	}

	switch status {
	case http.StatusNotFound:
		return &NotFoundError{Message: orDefault(env.Error, notFoundMsg)}
	default:
		return &ServiceError{Message: orDefault(env.Error, "Unknown error")}
	}
}

func orDefault(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

// requiredBool extracts a field that must be present and non-null.
func requiredBool(raw map[string]jsonx.RawMessage, key string) (bool, error) {
	msg, ok := raw[key]
	if !ok {
		return false, fmt.Errorf("missing field %q", key)
	}
	var v *bool
	if err := jsonx.Unmarshal(msg, &v); err != nil {
		return false, err
	}
	if v == nil {
		return false, fmt.Errorf("field %q is null", key)
	}
	return *v, nil
}

// requiredString extracts a field that must be present and non-null.
func requiredString(raw map[string]jsonx.RawMessage, key string) (string, error) {
	msg, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	var v *string
	if err := jsonx.Unmarshal(msg, &v); err != nil {
		return "", err
	}
	if v == nil {
		return "", fmt.Errorf("field %q is null", key)
	}
	return *v, nil
}

// optionalString returns nil when the field is absent or null.
func optionalString(raw map[string]jsonx.RawMessage, key string) (*string, error) {
	msg, ok := raw[key]
	if !ok {
		return nil, nil
	}
	var v *string
	if err := jsonx.Unmarshal(msg, &v); err != nil {
		return nil, err
	}
	return v, nil
}
