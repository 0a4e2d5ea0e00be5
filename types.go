package prof

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/planet-nine-app/prof-go/internal/jsonx"
)

// Profile is a profile record as returned by the service. The client never
// mutates a Profile it received; updates are sent as a fresh ProfileData.
type Profile struct {
	UUID          string
	Name          string
	Email         string
	ImageFilename string
	CreatedAt     string
	UpdatedAt     string

	// Extra holds any fields the service returned beyond the named ones.
	// The schema is server-defined and forward-compatible.
	Extra map[string]any
}

// profileFields are the named keys of the wire shape; everything else
// lands in Extra.
var profileFields = map[string]bool{
	"uuid":          true,
	"name":          true,
	"email":         true,
	"imageFilename": true,
	"createdAt":     true,
	"updatedAt":     true,
}

// UnmarshalJSON decodes the wire shape. uuid, name, email, createdAt and
// updatedAt must be present strings; imageFilename may be absent or null.
// Unknown keys are kept in Extra so server-added fields survive a round trip.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]jsonx.RawMessage
	if err := jsonx.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if p.UUID, err = requiredString(raw, "uuid"); err != nil {
		return err
	}
	if p.Name, err = requiredString(raw, "name"); err != nil {
		return err
	}
	if p.Email, err = requiredString(raw, "email"); err != nil {
		return err
	}
	if p.CreatedAt, err = requiredString(raw, "createdAt"); err != nil {
		return err
	}
	if p.UpdatedAt, err = requiredString(raw, "updatedAt"); err != nil {
		return err
	}

	img, err := optionalString(raw, "imageFilename")
	if err != nil {
		return err
	}
	if img != nil {
		p.ImageFilename = *img
	}

	for key, msg := range raw {
		if profileFields[key] {
			continue
		}
		var v any
		if err := jsonx.Unmarshal(msg, &v); err != nil {
			return err
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[key] = v
	}
	return nil
}

// MarshalJSON re-emits the wire shape with Extra flattened alongside the
// named fields. Named fields win on key collisions; imageFilename is
// omitted when empty.
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+6)
	for k, v := range p.Extra {
		if profileFields[k] {
			continue
		}
		out[k] = v
	}
	out["uuid"] = p.UUID
	out["name"] = p.Name
	out["email"] = p.Email
	out["createdAt"] = p.CreatedAt
	out["updatedAt"] = p.UpdatedAt
	if p.ImageFilename != "" {
		out["imageFilename"] = p.ImageFilename
	}
	return jsonx.Marshal(out)
}

// ProfileData is the request payload for profile creation and update:
// field names mapped to JSON-representable values. Build one with
// ProfileBuilder or as a literal.
type ProfileData map[string]any

// ImageUpload is an image attached to a profile create or update.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ImageFromFile reads path and prepares its contents for upload, using
// the file's base name as the upload filename.
func ImageFromFile(path string) (*ImageUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return &ImageUpload{Filename: filepath.Base(path), Data: data}, nil
}

// HealthResponse is the service's health probe result.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// SpellResponse is the result of a spell invocation. Error is non-nil
// whenever the service sent one, even an empty one; Data carries every
// response field beyond success and error.
type SpellResponse struct {
	Success bool
	Error   *string
	Data    map[string]any
}

// UnmarshalJSON decodes the spell response shape. success must be a
// present bool; error may be absent or null; all other keys land in Data.
func (r *SpellResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]jsonx.RawMessage
	if err := jsonx.Unmarshal(data, &raw); err != nil {
		return err
	}

	success, err := requiredBool(raw, "success")
	if err != nil {
		return err
	}
	r.Success = success

	r.Error, err = optionalString(raw, "error")
	if err != nil {
		return err
	}

	for key, m := range raw {
		if key == "success" || key == "error" {
			continue
		}
		var v any
		if err := jsonx.Unmarshal(m, &v); err != nil {
			return err
		}
		if r.Data == nil {
			r.Data = make(map[string]any)
		}
		r.Data[key] = v
	}
	return nil
}

// MarshalJSON flattens Data back alongside success and error. Named
// fields win on key collisions; error is omitted when nil.
func (r SpellResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Data)+2)
	for k, v := range r.Data {
		if k == "success" || k == "error" {
			continue
		}
		out[k] = v
	}
	out["success"] = r.Success
	if r.Error != nil {
		out["error"] = *r.Error
	}
	return jsonx.Marshal(out)
}
