package sanity

import (
	"fmt"
	"strings"
)

// ImageURL turns an asset reference like "image-<id>-<w>x<h>-<ext>" into a
// CDN url. The CDN picks WebP when the browser supports it (auto=format).
func ImageURL(projectID, dataset, ref string) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("malformed image reference %q", ref)
	}
	id, dims, ext := parts[1], parts[2], parts[3]
	if !strings.Contains(dims, "x") {
		return "", fmt.Errorf("malformed image dimensions in %q", ref)
	}
	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s?auto=format&q=80", projectID, dataset, id, dims, ext), nil
}

// ImageURL resolves ref against this client's project and dataset.
func (c *Client) ImageURL(ref string) (string, error) {
	return ImageURL(c.cfg.ProjectID, c.cfg.Dataset, ref)
}
