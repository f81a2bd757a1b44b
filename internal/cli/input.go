package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	perr "listingseo/internal/platform/errors"
	"listingseo/internal/platform/net/http/bind"
	"listingseo/internal/services/api/seo/domain"
)

// listingFile is the on-disk shape of a listing in any supported format
type listingFile struct {
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Tags        []string `json:"tags" yaml:"tags" toml:"tags"`
	Locale      string   `json:"locale" yaml:"locale" toml:"locale"`
}

// decoders by file extension; "-" reads JSON from stdin
var decoders = map[string]func([]byte, *listingFile) error{
	".json": decodeJSON,
	".yaml": func(b []byte, l *listingFile) error { return yaml.Unmarshal(b, l) },
	".yml":  func(b []byte, l *listingFile) error { return yaml.Unmarshal(b, l) },
	".toml": func(b []byte, l *listingFile) error { return toml.Unmarshal(b, l) },
}

func decodeJSON(b []byte, l *listingFile) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(l)
}

// LoadListing reads a listing from path, picking the decoder by extension, and
// validates it against the same limits as the API
func LoadListing(path string, stdin io.Reader) (domain.Listing, error) {
	var (
		raw []byte
		err error
		ext = strings.ToLower(filepath.Ext(path))
	)
	if path == "-" {
		ext = ".json"
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Listing{}, perr.Wrap(err, perr.ErrorCodeInput, "read listing")
	}

	decode, ok := decoders[ext]
	if !ok {
		return domain.Listing{}, perr.Inputf("unsupported listing file %q: use .json, .yaml, .yml or .toml", path)
	}
	var lf listingFile
	if err := decode(raw, &lf); err != nil {
		return domain.Listing{}, perr.Wrapf(err, perr.ErrorCodeInput, "decode %s", filepath.Base(path))
	}

	out := domain.Listing{Title: lf.Title, Description: lf.Description, Tags: lf.Tags, Locale: lf.Locale}
	if err := bind.Validate(out); err != nil {
		return domain.Listing{}, err
	}
	return out, nil
}
