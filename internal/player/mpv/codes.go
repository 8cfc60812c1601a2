package mpv

import (
	"strings"

	"github.com/llehouerou/wavetube/internal/player"
)

var (
	restrictedHints = []string{
		"private video", "video is private", "sign in", "age-restricted", "age restricted",
		"confirm your age", "inappropriate for some users", "your country", "blocked",
		"embedding", "on other websites", "403",
	}
	notFoundHints = []string{"not found", "unavailable", "does not exist", "no such", "404"}
)

// CodeFor maps an mpv end-file error, prefixed with the last ytdl_hook error
// line when there is one, onto the embed error codes.
func CodeFor(fileError string) player.ErrorCode {
	s := strings.ToLower(fileError)
	for _, h := range restrictedHints {
		if strings.Contains(s, h) {
			return player.CodeEmbedNotAllowed
		}
	}
	for _, h := range notFoundHints {
		if strings.Contains(s, h) {
			return player.CodeNotFound
		}
	}
	if s == "" {
		return player.CodeInvalidParam
	}
	return player.CodeHTML5
}
