// Package vcf parses category-labelled VCF files into the variant model
// consumed by the inheritance tests.
package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// Category INFO key prefixes written by the labelling stage.
const (
	booleanCategoryPrefix = "categoryboolean"
	sampleCategoryPrefix  = "categorysample"
	supportCategoryPrefix = "categorysupport"
)

// ParseError describes a malformed VCF line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf line %d: %s", e.Line, e.Message)
}

// Parser reads labelled variants from a VCF file.
type Parser struct {
	reader      *bufio.Reader
	file        *os.File
	gzipReader  *gzip.Reader
	lineNumber  int
	header      []string
	sampleNames []string
}

// NewParser creates a VCF parser for the given file.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g. stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseHeader reads and stores VCF header lines.
func (p *Parser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read header: %w", err)
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "##") {
			p.header = append(p.header, line)
			continue
		}

		if strings.HasPrefix(line, "#CHROM") {
			p.header = append(p.header, line)
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				p.sampleNames = fields[9:]
			}
			return nil
		}

		return &ParseError{
			Line:    p.lineNumber,
			Message: "expected #CHROM header line",
		}
	}

	return &ParseError{
		Line:    p.lineNumber,
		Message: "no #CHROM header line found",
	}
}

// Next reads the next variant from the VCF file.
// Returns nil, nil when there are no more variants.
func (p *Parser) Next() (*variant.Variant, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read variant line: %w", err)
	}
	p.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return p.Next()
	}

	return p.parseLine(line)
}

// parseLine parses a single VCF data line into a Variant.
func (p *Parser) parseLine(line string) (*variant.Variant, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least 8 columns, found %d", len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid position: %s", fields[1]),
		}
	}

	info := parseInfo(fields[7])
	v := &variant.Variant{
		Coordinates: variant.Coordinates{
			Chrom: normalizeChrom(fields[0]),
			Pos:   pos,
			Ref:   fields[3],
			Alt:   fields[4],
		},
		Info:       info,
		Categories: parseCategories(info),
		HetSamples: variant.NewStringSet(),
		HomSamples: variant.NewStringSet(),
		Depths:     make(map[string]int),
		ABRatios:   make(map[string]float64),
	}

	if _, isSV := info["svtype"]; isSV {
		v.Kind = variant.KindStructural
	}

	if len(fields) > 9 {
		if err := p.parseSampleColumns(v, fields[8], fields[9:]); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// parseInfo parses the INFO field into a typed map. Numeric values become
// int or float64, bare flags become true, everything else stays a string.
// Keys are lowercased to match the labelling stage's conventions.
func parseInfo(info string) map[string]any {
	result := make(map[string]any)
	if info == "." {
		return result
	}

	for _, kv := range strings.Split(info, ";") {
		parts := strings.SplitN(kv, "=", 2)
		key := strings.ToLower(parts[0])
		if len(parts) == 1 {
			result[key] = true
			continue
		}
		result[key] = typedValue(parts[1])
	}

	return result
}

func typedValue(raw string) any {
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// parseCategories extracts assigned category labels from INFO keys.
// Boolean and support categories count as assigned when truthy; sample
// categories carry a comma-joined sample list, with "missing" meaning unset.
func parseCategories(info map[string]any) []variant.Category {
	var categories []variant.Category

	for key, value := range info {
		switch {
		case strings.HasPrefix(key, booleanCategoryPrefix):
			if truthy(value) {
				categories = append(categories, variant.Category{
					Name: strings.TrimPrefix(key, booleanCategoryPrefix),
					Kind: variant.CategoryBoolean,
				})
			}
		case strings.HasPrefix(key, supportCategoryPrefix):
			if truthy(value) {
				categories = append(categories, variant.Category{
					Name: "support",
					Kind: variant.CategorySupport,
				})
			}
		case strings.HasPrefix(key, sampleCategoryPrefix):
			samples := sampleList(value)
			if len(samples) > 0 {
				categories = append(categories, variant.Category{
					Name:    strings.TrimPrefix(key, sampleCategoryPrefix),
					Kind:    variant.CategorySample,
					Samples: samples,
				})
			}
		}
	}

	return categories
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != "" && v != "0" && v != "missing"
	default:
		return false
	}
}

func sampleList(value any) []string {
	s, ok := value.(string)
	if !ok || s == "" || s == "missing" {
		return nil
	}
	return strings.Split(s, ",")
}

// parseSampleColumns fills per-sample call data from FORMAT and sample fields.
func (p *Parser) parseSampleColumns(v *variant.Variant, format string, samples []string) error {
	if len(samples) > len(p.sampleNames) {
		return &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("%d sample columns for %d samples", len(samples), len(p.sampleNames)),
		}
	}

	keys := strings.Split(format, ":")
	for i, column := range samples {
		sample := p.sampleNames[i]
		values := strings.Split(column, ":")

		var gt, ad string
		for j, key := range keys {
			if j >= len(values) {
				break
			}
			switch key {
			case "GT":
				gt = values[j]
			case "AD":
				ad = values[j]
			case "DP":
				if dp, err := strconv.Atoi(values[j]); err == nil {
					v.Depths[sample] = dp
				}
			}
		}

		switch genotypeClass(gt) {
		case genotypeHet:
			v.HetSamples.Add(sample)
		case genotypeHom:
			v.HomSamples.Add(sample)
		default:
			continue
		}

		if ab, ok := alleleBalance(ad); ok {
			v.ABRatios[sample] = ab
		}
	}

	return nil
}

type genotype int

const (
	genotypeRef genotype = iota
	genotypeHet
	genotypeHom
)

// genotypeClass classifies a GT value. Calls with any missing allele are
// treated as not called.
func genotypeClass(gt string) genotype {
	alleles := strings.FieldsFunc(gt, func(r rune) bool {
		return r == '/' || r == '|'
	})
	if len(alleles) == 0 {
		return genotypeRef
	}

	alt := 0
	for _, a := range alleles {
		switch a {
		case ".":
			return genotypeRef
		case "0":
		default:
			alt++
		}
	}

	switch {
	case alt == 0:
		return genotypeRef
	case alt == len(alleles):
		return genotypeHom
	default:
		return genotypeHet
	}
}

// alleleBalance computes alt reads over total reads from an AD value.
func alleleBalance(ad string) (float64, bool) {
	parts := strings.Split(ad, ",")
	if len(parts) < 2 {
		return 0, false
	}
	total := 0
	alt := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		total += n
		if i > 0 {
			alt += n
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(alt) / float64(total), true
}

// normalizeChrom strips any "chr" prefix so chromosome names match the
// canonical ordering.
func normalizeChrom(chrom string) string {
	if len(chrom) > 3 && strings.EqualFold(chrom[:3], "chr") {
		return chrom[3:]
	}
	return chrom
}

// Header returns the VCF header lines.
func (p *Parser) Header() []string {
	return p.header
}

// SampleNames returns sample names from the #CHROM header line.
func (p *Parser) SampleNames() []string {
	return p.sampleNames
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
