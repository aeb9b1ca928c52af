package pipeline

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/chartopt/pkg/cache"
	"github.com/matzehuels/chartopt/pkg/errors"
	chartio "github.com/matzehuels/chartopt/pkg/io"
)

// Input is a chart definition together with the rows its series use.
type Input struct {
	Definition *chartio.Definition
	Dataset    chartio.Dataset

	// Source is the definition path, or "inline".
	Source string

	// DefinitionHash and DataHash address the parsed inputs. They are empty
	// when an input cannot be hashed, which disables document caching.
	DefinitionHash string
	DataHash       string
}

// Load reads the definition and its dataset.
func Load(opts Options) (*Input, error) {
	var (
		def    *chartio.Definition
		err    error
		source = "inline"
	)
	if len(opts.Definition) > 0 {
		def, err = chartio.ReadDefinition(bytes.NewReader(opts.Definition))
	} else {
		source = opts.DefinitionPath
		def, err = chartio.LoadDefinition(opts.DefinitionPath)
	}
	if err != nil {
		return nil, err
	}

	ds, err := loadDataset(def, opts)
	if err != nil {
		return nil, err
	}

	return &Input{
		Definition:     def,
		Dataset:        ds,
		Source:         source,
		DefinitionHash: digest(def),
		DataHash:       digest(ds),
	}, nil
}

func loadDataset(def *chartio.Definition, opts Options) (chartio.Dataset, error) {
	switch {
	case len(opts.Data) > 0:
		return chartio.ReadDataset(bytes.NewReader(opts.Data))
	case opts.DataPath != "":
		return chartio.LoadDataset(opts.DataPath)
	case def.Data == "":
		return chartio.Dataset{}, nil
	case len(opts.Definition) > 0:
		// An inline definition has no directory to resolve a data file
		// against, and may come from an untrusted client.
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"definition names data file %q; supply the dataset inline", def.Data)
	}
	return chartio.LoadDataset(def.DataPath())
}

// digest hashes the canonical JSON form of a parsed input, so formatting and
// comments in the source files do not affect cache keys.
func digest(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
