// Package roster reads the team roster document.
package roster

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const httpsScheme = "https://"

var imageExtRegex = regexp.MustCompile(`(?i)\.(png|jpe?g)$`)

var _ ports.RosterLoader = (*Loader)(nil)

// Loader reads a YAML sequence of members and normalizes their picture URLs.
type Loader struct {
	pictureBase string
}

// NewLoader creates a Loader resolving relative pictures against pictureBase,
// a host and path without scheme such as "about.gitlab.com/images/team/".
func NewLoader(pictureBase string) *Loader {
	return &Loader{pictureBase: pictureBase}
}

// Load reads the roster at path.
func (l *Loader) Load(p string) ([]domain.Member, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRosterReadFailed.Error()), "path", p)
	}

	var members []domain.Member
	if err := yaml.Unmarshal(data, &members); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRosterParseFailed.Error()), "path", p)
	}

	for i := range members {
		members[i].Picture = l.PictureURL(members[i].Picture)
	}
	return members, nil
}

// PictureURL returns the absolute URL of a roster picture.
// Absolute https URLs are kept. Relative pictures hosted under the base get
// the cropped variant.
func (l *Loader) PictureURL(picture string) string {
	if picture == "" || strings.HasPrefix(picture, httpsScheme) {
		return picture
	}

	u := httpsScheme + path.Clean(l.pictureBase+picture)
	if !strings.Contains(u, l.pictureBase) {
		return u
	}
	return imageExtRegex.ReplaceAllString(u, "") + "-crop.jpg"
}
