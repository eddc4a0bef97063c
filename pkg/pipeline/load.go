package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/matzehuels/linkdraw/pkg/cache"
	"github.com/matzehuels/linkdraw/pkg/connector"
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/errors"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/observability"
	"github.com/matzehuels/linkdraw/pkg/symbol"
)

// Load reads the dataset named by opts and returns it with the hash of its
// bytes.
func Load(ctx context.Context, opts Options) (ds *pkgio.Dataset, hash string, err error) {
	source := opts.Dataset
	if len(opts.DatasetBytes) > 0 {
		source = "inline"
	}
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)
	defer func() {
		n := 0
		if ds != nil {
			n = len(ds.Links)
		}
		observability.Pipeline().OnLoadComplete(ctx, source, n, time.Since(start), err)
	}()

	raw, format := opts.DatasetBytes, opts.DatasetFormat
	if len(raw) == 0 {
		if format == "" {
			if format, err = pkgio.FormatFromPath(opts.Dataset); err != nil {
				return nil, "", err
			}
		}
		if raw, err = os.ReadFile(opts.Dataset); err != nil {
			if os.IsNotExist(err) {
				return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", opts.Dataset)
			}
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.Dataset)
		}
	}

	ds, err = pkgio.ReadDataset(bytes.NewReader(raw), format)
	if err != nil {
		return nil, "", err
	}
	return ds, cache.Hash(raw), nil
}

// ValidateStyles checks the options every link resolves to: symbol kinds
// must be registered and label positions must name a known policy. It needs
// placed nodes.
func ValidateStyles(src data.Source) error {
	for i := range src.Count() {
		v := src.ItemVisual(i)
		for _, kind := range []string{v.From.Kind, v.To.Kind} {
			if err := errors.ValidateSymbolKind(kind, symbol.Default().Known); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSymbol, err, "link %d", i)
			}
		}
		m := src.ItemModel(i)
		for _, path := range []string{"label.position", "emphasis.label.position"} {
			pos, _ := m.String(path)
			if err := errors.ValidateLabelPosition(pos, connector.Positions); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPosition, err, "link %d", i)
			}
		}
	}
	return nil
}
