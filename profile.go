package prof

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/planet-nine-app/prof-go/internal/jsonx"
	"github.com/planet-nine-app/prof-go/internal/mimex"
)

// CreateProfile creates the signer's profile from data, optionally
// attaching an image, and returns the stored record.
func (c *Client) CreateProfile(ctx context.Context, data ProfileData, image *ImageUpload) (*Profile, error) {
	return c.submitProfile(ctx, http.MethodPost, data, image, "Not found")
}

// UpdateProfile replaces the signer's profile with data, optionally
// attaching a new image, and returns the stored record.
func (c *Client) UpdateProfile(ctx context.Context, data ProfileData, image *ImageUpload) (*Profile, error) {
	return c.submitProfile(ctx, http.MethodPut, data, image, "Profile not found")
}

func (c *Client) submitProfile(ctx context.Context, method string, data ProfileData, image *ImageUpload, notFoundMsg string) (*Profile, error) {
	auth, err := c.authParams()
	if err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(data, auth, image)
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.do(ctx, method, c.profileURL(auth["uuid"]), contentType, body)
	if err != nil {
		return nil, err
	}
	return profileFromResponse(status, respBody, notFoundMsg, true)
}

// GetProfile fetches a profile. targetUUID selects whose; empty means the
// signer's own.
func (c *Client) GetProfile(ctx context.Context, targetUUID string) (*Profile, error) {
	auth, err := c.authParams()
	if err != nil {
		return nil, err
	}

	url := c.profileURL(targetOrSelf(targetUUID, auth)) + "?" + rawQuery(auth)

	status, body, err := c.do(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}
	return profileFromResponse(status, body, "Profile not found", false)
}

// DeleteProfile removes the signer's profile. Success returns nil; any
// non-2xx status is reported through the response envelope's error.
func (c *Client) DeleteProfile(ctx context.Context) error {
	auth, err := c.authParams()
	if err != nil {
		return err
	}

	payload, err := jsonx.Marshal(auth)
	if err != nil {
		return &SerializationError{Err: err}
	}

	status, body, err := c.do(ctx, http.MethodDelete, c.profileURL(auth["uuid"]), "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		env, err := decodeEnvelope(body)
		if err != nil {
			return &SerializationError{Err: err}
		}
		return &ServiceError{Message: orDefault(env.Error, "Delete failed")}
	}
	return nil
}

// GetProfileImage fetches a profile's image bytes. targetUUID selects
// whose; empty means the signer's own. Any non-2xx status is reported as
// NotFoundError.
func (c *Client) GetProfileImage(ctx context.Context, targetUUID string) ([]byte, error) {
	auth, err := c.authParams()
	if err != nil {
		return nil, err
	}

	url := c.profileImageURL(targetOrSelf(targetUUID, auth)) + "?" + rawQuery(auth)

	status, body, err := c.do(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &NotFoundError{Message: "Image not found"}
	}
	return body, nil
}

// GetProfileImageURL builds a pre-authenticated image URL without
// touching the network, e.g. for handing to an <img> tag. The auth
// parameters it embeds are minted now and sign the current timestamp.
func (c *Client) GetProfileImageURL(targetUUID string) (string, error) {
	auth, err := c.authParams()
	if err != nil {
		return "", err
	}
	return c.profileImageURL(targetOrSelf(targetUUID, auth)) + "?" + rawQuery(auth), nil
}

func targetOrSelf(target string, auth map[string]string) string {
	if target != "" {
		return target
	}
	return auth["uuid"]
}

// multipartBody assembles the create/update form: a profileData field
// holding the JSON-encoded payload, one field per auth parameter, and an
// optional image part whose MIME type follows the filename extension.
func multipartBody(data ProfileData, auth map[string]string, image *ImageUpload) (io.Reader, string, error) {
	payload, err := jsonx.Marshal(data)
	if err != nil {
		return nil, "", &SerializationError{Err: err}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("profileData", string(payload)); err != nil {
		return nil, "", &HTTPError{Err: err}
	}
	for key, value := range auth {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", &HTTPError{Err: err}
		}
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(image.Filename)))
		header.Set("Content-Type", mimex.ImageContentType(image.Filename))
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", &HTTPError{Err: err}
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", &HTTPError{Err: err}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", &HTTPError{Err: err}
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
