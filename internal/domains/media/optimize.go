package media

import (
	"fmt"
	"strings"
)

// OptimizedURL splices width, height and quality directives into a
// Cloudinary delivery URL without re-uploading the asset. URLs that do
// not belong to Cloudinary, or that carry no directives, come back
// unchanged. The directives land right after the "upload" path segment:
//
//	.../image/upload/w_400,h_300,q_auto/v1/abc.jpg
//
// Pure string manipulation, no network.
func OptimizedURL(rawURL string, width, height int, quality string) string {
	if !strings.Contains(rawURL, "cloudinary.com") {
		return rawURL
	}

	var directives []string
	if width > 0 {
		directives = append(directives, fmt.Sprintf("w_%d", width))
	}
	if height > 0 {
		directives = append(directives, fmt.Sprintf("h_%d", height))
	}
	if quality != "" {
		directives = append(directives, "q_"+quality)
	}
	if len(directives) == 0 {
		return rawURL
	}

	parts := strings.Split(rawURL, "/")
	for i, part := range parts {
		if part == "upload" {
			rebuilt := make([]string, 0, len(parts)+1)
			rebuilt = append(rebuilt, parts[:i+1]...)
			rebuilt = append(rebuilt, strings.Join(directives, ","))
			rebuilt = append(rebuilt, parts[i+1:]...)
			return strings.Join(rebuilt, "/")
		}
	}

	// No upload segment, nowhere to put the directives.
	return rawURL
}
