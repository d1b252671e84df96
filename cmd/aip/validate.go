package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/history"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/moi"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/panelapp"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/results"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/vcf"
)

func newValidateCmd() *cobra.Command {
	var (
		vcfPath     string
		pedPath     string
		panelPath   string
		outputPath  string
		historyPath string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Test candidate variants against inheritance models",
		Long: `Reads a category-labelled VCF, a pedigree, and gathered panel data,
tests each candidate variant against the gene's modes of inheritance,
and writes consolidated per-sample findings as JSON.`,
		Example: `  aip validate --vcf labelled.vcf.gz --pedigree cohort.ped --panelapp panels.json -o results.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(vcfPath, pedPath, panelPath, outputPath, historyPath, workers)
		},
	}

	cmd.Flags().StringVar(&vcfPath, "vcf", "", "category-labelled VCF (required)")
	cmd.Flags().StringVar(&pedPath, "pedigree", "", "joint-call PED file (required)")
	cmd.Flags().StringVar(&panelPath, "panelapp", "", "gathered panel data JSON (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&historyPath, "history", "", "DuckDB history database for first-seen tracking")
	cmd.Flags().IntVar(&workers, "workers", 0, "gene evaluation workers (default: NumCPU)")

	for _, flag := range []string{"vcf", "pedigree", "panelapp"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runValidate(vcfPath, pedPath, panelPath, outputPath, historyPath string, workers int) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ped, err := pedigree.ParseFile(pedPath)
	if err != nil {
		return err
	}
	logger.Info("pedigree loaded", zap.Int("participants", len(ped.Participants)))

	panel, err := panelapp.Load(panelPath)
	if err != nil {
		return err
	}
	logger.Info("panel data loaded", zap.Int("genes", len(panel.Genes)))

	thresholds, err := moi.ThresholdsFromConfig(viper.GetStringMap("moi"))
	if err != nil {
		return err
	}

	parser, err := vcf.NewParser(vcfPath)
	if err != nil {
		return err
	}
	defer parser.Close()
	samples := parser.SampleNames()

	greenGenes := make(map[string]bool, len(panel.Genes))
	for geneID := range panel.Genes {
		greenGenes[geneID] = true
	}

	geneDict, err := vcf.GatherGeneDict(parser, greenGenes)
	if err != nil {
		return err
	}
	logger.Info("variants gathered", zap.Int("genes", len(geneDict)))

	geneMOI := panel.SimpleMOIMap()
	compHet := moi.BuildCohortCompHetIndex(geneDict)

	runners, err := moi.SetUpInheritanceFilters(ped, thresholds, geneMOI, compHet, logger)
	if err != nil {
		return err
	}

	findings, err := moi.ApplyMOIToVariants(geneDict, runners, geneMOI, workers, logger)
	if err != nil {
		return err
	}
	logger.Info("inheritance tests complete", zap.Int("findings", len(findings)))

	cleaned := results.Clean(findings, samples)

	if historyPath != "" {
		store, err := history.Open(historyPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Annotate(cleaned); err != nil {
			return fmt.Errorf("annotate history: %w", err)
		}
	}

	meta := results.NewMeta(ped, samples)
	meta.InputFile = vcfPath
	for _, pm := range panel.Metadata {
		meta.Panels = append(meta.Panels, pm)
	}

	out := os.Stdout
	if outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	return results.WriteJSON(out, &results.Report{Meta: meta, Results: cleaned})
}
