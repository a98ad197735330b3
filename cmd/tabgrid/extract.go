package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tsawler/tabgrid"
	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/tables"
)

const tableSeparator = "------------------------------"

func runExtract(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no SOURCE specified")
	}

	var err error
	for _, src := range cmd.Args().Slice() {
		if ctx.Err() != nil {
			return multierr.Append(err, ctx.Err())
		}
		ext, er := newExtractor(env.Cfg, env.Log, src)
		if er != nil {
			return er
		}
		tbls, er := ext.Tables()
		if er != nil {
			env.Log.Error("Unable to extract tables", zap.String("source", src), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}
		env.Log.Debug("Extracted tables", zap.String("source", src), zap.Int("count", len(tbls)))
		if er := printTables(os.Stdout, tbls); er != nil {
			return multierr.Append(err, er)
		}
	}
	return err
}

// newExtractor applies the configuration to a fluent extractor for src.
func newExtractor(cfg *config.Config, log *zap.Logger, src string) (*tabgrid.Extractor, error) {
	dev, err := cfg.Measure.Device()
	if err != nil {
		return nil, err
	}
	layout, err := cfg.Layout.Tables()
	if err != nil {
		return nil, err
	}

	ext := tabgrid.Open(src).
		Logger(log).
		Measurer(dev).
		RowUnit(layout.RowUnit).
		OverrideWidth(layout.OverrideWidth).
		Workers(layout.Workers).
		DecorationTags(cfg.Document.DecorationTags...)
	if cfg.Document.KeepNewlines {
		ext = ext.KeepNewlines()
	}
	if layout.RowPlacement == tables.RowStepMeasured {
		ext = ext.MeasuredRows()
	}
	if layout.OverrideMatch == tables.MatchDeclaration {
		ext = ext.DeclarationOverride()
	}
	return ext, nil
}

// printTables writes each table dump followed by a separator line.
func printTables(w io.Writer, tbls []*model.Table) error {
	for _, t := range tbls {
		if _, err := fmt.Fprintf(w, "%s%s\n", t, tableSeparator); err != nil {
			return err
		}
	}
	return nil
}
