package prof

// ProfileBuilder assembles a ProfileData payload incrementally. Later
// values overwrite earlier ones under the same key.
type ProfileBuilder struct {
	data ProfileData
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{data: ProfileData{}}
}

// Name sets the profile's display name.
func (b *ProfileBuilder) Name(name string) *ProfileBuilder {
	return b.Field("name", name)
}

// Email sets the profile's email address.
func (b *ProfileBuilder) Email(email string) *ProfileBuilder {
	return b.Field("email", email)
}

// Field sets an arbitrary profile field. The value must be
// JSON-representable; anything that cannot be encoded surfaces as a
// SerializationError when the payload is sent.
func (b *ProfileBuilder) Field(key string, value any) *ProfileBuilder {
	b.data[key] = value
	return b
}

// Build returns the accumulated payload. The builder keeps no reference
// to it, so the caller owns the map.
func (b *ProfileBuilder) Build() ProfileData {
	data := b.data
	b.data = ProfileData{}
	return data
}
