package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginFor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://music.example.com/watch?v=1", "https://music.example.com", false},
		{"http://localhost:8080/", "http://localhost:8080", false},
		{"music.example.com", "", true},
		{"://bad", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := OriginFor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultParams_DisableChrome(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, "0", p["controls"])
	assert.Equal(t, "1", p["modestbranding"])
	assert.Equal(t, "0", p["rel"])
	assert.Equal(t, "1", p["disablekb"])
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions("https://music.example.com", map[string]string{"rel": "1"})

	assert.Equal(t, MountID, opts.MountID)
	assert.Equal(t, "https://music.example.com", opts.Origin)
	assert.Equal(t, "https://music.example.com", opts.Params["origin"])
	assert.Equal(t, "1", opts.Params["rel"], "extra params override defaults")
	assert.Equal(t, "0", opts.Params["controls"])
}
