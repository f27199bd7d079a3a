package uimodel

import "github.com/thomasahle/trainbox/gfx"

// IdentityComponent passes trains through unchanged. Inside a
// HorizontalComponent identities mark the gaps where new components can be
// inserted.
type IdentityComponent struct {
	track
}

var _ Component = (*IdentityComponent)(nil)

// NewIdentityComponent creates an identity segment padding pixels wide.
func NewIdentityComponent(padding float64) *IdentityComponent {
	return &IdentityComponent{track: newTrack("identity", padding, gfx.ColorFromARGB(0xff8c7b62))}
}
