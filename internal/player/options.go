package player

import (
	"fmt"
	"net/url"
)

// MountID is the fixed identifier of the hidden player instance.
const MountID = "yt-player-instance"

// Options configure a new Handle.
type Options struct {
	MountID string
	// Origin is scheme://host of the embedding application.
	Origin string
	Params map[string]string
}

// DefaultParams disables native controls, branding, keyboard shortcuts and
// related videos, and enables the scripting API.
func DefaultParams() map[string]string {
	return map[string]string{
		"controls":       "0",
		"modestbranding": "1",
		"rel":            "0",
		"showinfo":       "0",
		"disablekb":      "1",
		"enablejsapi":    "1",
		"playsinline":    "1",
	}
}

// OriginFor returns scheme://host of rawURL.
func OriginFor(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("origin %q: missing scheme or host", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// NewOptions builds Options for the fixed mount with the default params.
// extra overrides individual params.
func NewOptions(origin string, extra map[string]string) Options {
	params := DefaultParams()
	if origin != "" {
		params["origin"] = origin
		params["widget_referrer"] = origin
	}
	for k, v := range extra {
		params[k] = v
	}
	return Options{MountID: MountID, Origin: origin, Params: params}
}
