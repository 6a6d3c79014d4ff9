package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/jsphweid/harmonia/logger"
	"github.com/jsphweid/harmonia/model"
	"github.com/pkg/errors"
)

//go:embed data/catalog.json
var embeddedJSON []byte

// Source supplies extra definitions, e.g. a DynamoDB table.
type Source interface {
	Definitions(ctx context.Context) (*model.Definitions, error)
}

type Options struct {
	// Path, when set, names a JSON file that replaces the embedded catalog.
	Path string
	// Remote definitions are merged over the file or embedded ones by id.
	Remote Source
}

// Embedded returns the definitions compiled into the binary.
func Embedded() (*model.Definitions, error) {
	return decode(embeddedJSON)
}

func decode(data []byte) (*model.Definitions, error) {
	var defs model.Definitions
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, "could not decode catalog")
	}
	return &defs, nil
}

// ReadFile reads definitions from a JSON file shaped like the embedded one.
func ReadFile(path string) (*model.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read catalog %s", path)
	}
	defs, err := decode(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return defs, nil
}

// Load assembles the catalog: the embedded definitions or the file at
// opts.Path, then opts.Remote merged on top.
func Load(ctx context.Context, opts Options) (*Catalog, error) {
	source := "embedded"
	defs, err := Embedded()
	if opts.Path != "" {
		source = opts.Path
		defs, err = ReadFile(opts.Path)
	}
	if err != nil {
		return nil, err
	}

	if opts.Remote != nil {
		remote, err := opts.Remote.Definitions(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not load remote catalog")
		}
		defs.Merge(remote)
		source += "+remote"
	}

	c, err := Build(defs)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", logger.Fields{
		"source":  source,
		"scales":  len(defs.Scales),
		"chords":  len(defs.Chords),
		"tunings": len(defs.Tunings),
	})
	return c, nil
}

// MustLoadEmbedded builds the embedded catalog and panics if it is invalid.
func MustLoadEmbedded() *Catalog {
	c, err := Load(context.Background(), Options{})
	if err != nil {
		panic("embedded catalog: " + err.Error())
	}
	return c
}
