package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uspn-tools/rostergen/internal/emit"
	"github.com/uspn-tools/rostergen/internal/graph"
	"github.com/uspn-tools/rostergen/internal/reader"
)

var (
	seedXLSXPath string
	seedCSVPath  string
	seedOutPath  string
	seedDryRun   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the responsables seed SQL from the roster sources",
	Long: `Reads the formations CSV (required) and the responsables spreadsheet
(optional), resolves entity and person identity across both sources, adds one
test fixture per role, and writes the ordered insert statements plus sequence
recalibration to the output file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		xlsxPath := seedXLSXPath
		if xlsxPath == "" {
			xlsxPath = cfg.Paths.XLSX
		}
		csvPath := seedCSVPath
		if csvPath == "" {
			csvPath = cfg.Paths.CSV
		}
		outPath := seedOutPath
		if outPath == "" {
			outPath = cfg.Paths.Out
		}

		doc, counts, err := runSeed(xlsxPath, csvPath)
		if err != nil {
			return err
		}

		if seedDryRun {
			fmt.Fprint(cmd.OutOrStdout(), doc)
		} else if err := writeAtomic(outPath, doc); err != nil {
			return err
		}

		zap.L().Info("seed generated",
			zap.String("out", outPath),
			zap.Bool("dry_run", seedDryRun),
			zap.Int("entities", counts.Entities),
			zap.Int("people", counts.People),
			zap.Int("assignments", counts.Assignments),
			zap.Int("contacts", counts.Contacts),
			zap.Int("new_roles", counts.NewRoles),
		)
		return nil
	},
}

// seedCounts is the aggregate report of one run.
type seedCounts struct {
	Entities    int
	People      int
	Assignments int
	Contacts    int
	NewRoles    int
}

// runSeed executes the whole pipeline in memory and returns the rendered
// document. The CSV source is a hard precondition; a missing spreadsheet only
// produces an empty entry set.
func runSeed(xlsxPath, csvPath string) (string, seedCounts, error) {
	log := zap.L().With(zap.String("command", "seed"))

	formations, err := reader.ReadFormations(csvPath)
	if err != nil {
		return "", seedCounts{}, eris.Wrap(err, "seed: formations csv")
	}

	var entries []reader.SheetEntry
	if _, err := os.Stat(xlsxPath); err == nil {
		entries, err = reader.ReadSheetEntries(xlsxPath)
		if err != nil {
			return "", seedCounts{}, eris.Wrap(err, "seed: responsables spreadsheet")
		}
	} else {
		log.Info("spreadsheet source absent, continuing with CSV only", zap.String("path", xlsxPath))
	}

	b := graph.NewBuilder()
	for _, rec := range formations {
		b.IngestFormation(rec)
	}
	for _, e := range entries {
		b.IngestSheetEntry(e)
	}
	b.AddRoleFixtures()

	ex := b.Export()
	doc := emit.Render(ex)

	counts := seedCounts{
		Entities:    b.EntityCount(),
		People:      len(ex.People),
		Assignments: len(ex.Assignments),
		Contacts:    len(ex.Contacts),
		NewRoles:    len(ex.Roles),
	}
	return doc, counts, nil
}

// writeAtomic builds the document fully before it becomes visible: write a
// sibling temp file, then rename over the target.
func writeAtomic(path, doc string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "seed: create output directory")
	}
	tmp, err := os.CreateTemp(dir, ".rostergen-*.sql")
	if err != nil {
		return eris.Wrap(err, "seed: create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmpName)    //nolint:errcheck
		return eris.Wrap(err, "seed: write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "seed: close temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "seed: rename output")
	}
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&seedXLSXPath, "xlsx", "", "path to the responsables spreadsheet (default from config)")
	seedCmd.Flags().StringVar(&seedCSVPath, "csv", "", "path to the formations CSV (default from config)")
	seedCmd.Flags().StringVar(&seedOutPath, "out", "", "path of the generated SQL file (default from config)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "print the document instead of writing the output file")
	rootCmd.AddCommand(seedCmd)
}
