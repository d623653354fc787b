// Package seeds holds the ordered domain → seed title mapping that drives a run.
package seeds

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default domain names.
const (
	DomainLegal         = "legal"
	DomainCybersecurity = "cybersecurity"
	DomainFinance       = "finance"
)

var (
	// ErrEmptySet is returned when a set has no domains.
	ErrEmptySet = errors.New("seed set has no domains")
	// ErrInvalidDomain is returned for an empty, duplicate, or title-less domain.
	ErrInvalidDomain = errors.New("invalid domain")
)

// Domain is a named, ordered list of seed page titles.
type Domain struct {
	Name   string
	Titles []string
}

// Set is an immutable, ordered collection of domains.
// The zero value is an empty set.
type Set struct {
	domains []Domain
}

// New validates the domains and returns a Set holding copies of them.
func New(domains ...Domain) (Set, error) {
	if len(domains) == 0 {
		return Set{}, ErrEmptySet
	}

	seen := make(map[string]bool, len(domains))
	copied := make([]Domain, 0, len(domains))
	for _, d := range domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return Set{}, fmt.Errorf("%w: empty name", ErrInvalidDomain)
		}
		if seen[name] {
			return Set{}, fmt.Errorf("%w: duplicate name %q", ErrInvalidDomain, name)
		}
		seen[name] = true

		if len(d.Titles) == 0 {
			return Set{}, fmt.Errorf("%w: %q has no titles", ErrInvalidDomain, name)
		}
		for i, title := range d.Titles {
			if strings.TrimSpace(title) == "" {
				return Set{}, fmt.Errorf("%w: %q title %d is empty", ErrInvalidDomain, name, i)
			}
		}

		copied = append(copied, Domain{Name: name, Titles: append([]string(nil), d.Titles...)})
	}

	return Set{domains: copied}, nil
}

// Default returns the built-in three-domain seed set.
func Default() Set {
	set, err := New(
		Domain{Name: DomainLegal, Titles: []string{
			"Caselaw Access Project", "PACER", "United States Code",
			"Code of Federal Regulations", "Court opinion", "Case citation",
		}},
		Domain{Name: DomainCybersecurity, Titles: []string{
			"MITRE ATT&CK", "Common Vulnerabilities and Exposures", "Zero-day (computing)",
			"Malware", "Penetration test", "Intrusion detection system",
		}},
		Domain{Name: DomainFinance, Titles: []string{
			"EDGAR", "SEC filing", "Form 10-K", "Form 10-Q",
			"International Securities Identification Number", "Fama–French three-factor model",
		}},
	)
	if err != nil {
		panic(err)
	}
	return set
}

// Domains returns a copy of the domains in configured order.
func (s Set) Domains() []Domain {
	out := make([]Domain, len(s.domains))
	for i, d := range s.domains {
		out[i] = Domain{Name: d.Name, Titles: append([]string(nil), d.Titles...)}
	}
	return out
}

// Len returns the number of domains.
func (s Set) Len() int {
	return len(s.domains)
}

// TitleCount returns the total number of seed titles across all domains.
func (s Set) TitleCount() int {
	n := 0
	for _, d := range s.domains {
		n += len(d.Titles)
	}
	return n
}

// Load reads a seed set from a YAML file mapping domain names to title lists.
//
//	legal:
//	  - United States Code
//	finance:
//	  - EDGAR
//
// Mapping order is preserved.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading seeds file %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("seeds file %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes YAML seed data. See Load for the format.
func Parse(data []byte) (Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Set{}, ErrEmptySet
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Set{}, fmt.Errorf("line %d: expected a mapping of domain to titles", root.Line)
	}

	// Mapping content alternates key, value.
	domains := make([]Domain, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var titles []string
		if err := value.Decode(&titles); err != nil {
			return Set{}, fmt.Errorf("line %d: domain %q: %w", value.Line, key.Value, err)
		}
		domains = append(domains, Domain{Name: key.Value, Titles: titles})
	}

	return New(domains...)
}
