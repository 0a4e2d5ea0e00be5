package prof

import (
	"bytes"
	"context"
	"net/http"

	"github.com/planet-nine-app/prof-go/internal/jsonx"
)

// ExecuteSpell invokes a named server-defined extension operation with
// data as its payload. The auth parameters are merged into the body and
// win any key collisions; the caller's map is left untouched.
func (c *Client) ExecuteSpell(ctx context.Context, name string, data map[string]any) (*SpellResponse, error) {
	auth, err := c.authParams()
	if err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(data)+len(auth))
	for k, v := range data {
		payload[k] = v
	}
	for k, v := range auth {
		payload[k] = v
	}

	body, err := jsonx.Marshal(payload)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	_, respBody, err := c.do(ctx, http.MethodPost, c.baseURL+"/magic/spell/"+name, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var spell SpellResponse
	if err := jsonx.Unmarshal(respBody, &spell); err != nil {
		return nil, &SerializationError{Err: err}
	}

	if !spell.Success {
		return nil, &ServiceError{Message: orDefault(spell.Error, "Spell execution failed")}
	}
	return &spell, nil
}
