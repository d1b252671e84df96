package pedigree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PED file column meanings, per the PLINK pedigree format.
const (
	colFamily = iota
	colSample
	colFather
	colMother
	colSex
	colPhenotype
	minColumns = 6
)

const missingParent = "0"

// ParseError describes a malformed pedigree line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pedigree line %d: %s", e.Line, e.Message)
}

// ParseFile reads a PLINK-format PED file.
func ParseFile(path string) (*Pedigree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pedigree file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads pedigree rows from a reader and links the family structure.
// Parent IDs of "0" mean the parent is not in the joint call.
func Parse(r io.Reader) (*Pedigree, error) {
	ped := New()

	// parent links are resolved after all rows are read, so row order
	// within a family does not matter
	type parentage struct {
		father, mother string
	}
	parents := make(map[string]parentage)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minColumns {
			return nil, &ParseError{
				Line:    lineNumber,
				Message: fmt.Sprintf("expected %d columns, found %d", minColumns, len(fields)),
			}
		}

		sampleID := fields[colSample]
		if _, exists := ped.Participants[sampleID]; exists {
			return nil, &ParseError{
				Line:    lineNumber,
				Message: fmt.Sprintf("duplicate sample ID %q", sampleID),
			}
		}

		ped.Add(&Participant{
			ID:       sampleID,
			Family:   fields[colFamily],
			IsFemale: fields[colSex] == "2",
			Affected: fields[colPhenotype] == "2",
		})
		parents[sampleID] = parentage{father: fields[colFather], mother: fields[colMother]}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pedigree: %w", err)
	}

	for sampleID, links := range parents {
		child := ped.Participants[sampleID]
		if links.father != missingParent {
			if father, ok := ped.Participants[links.father]; ok {
				child.Father = father
				father.Children = append(father.Children, child)
			}
		}
		if links.mother != missingParent {
			if mother, ok := ped.Participants[links.mother]; ok {
				child.Mother = mother
				mother.Children = append(mother.Children, child)
			}
		}
	}

	return ped, nil
}
