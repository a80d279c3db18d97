package plan

import (
	"fmt"
	"os"
	"strings"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []Account
	byNumber map[string]Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []Account) *Service {
	byNumber := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Service{accounts: accounts, byNumber: byNumber}
}

// Load reads a chart-of-accounts CSV and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accounts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accounts), nil
}

// All returns all accounts.
func (s *Service) All() []Account {
	return s.accounts
}

// Get returns an account by exact number.
func (s *Service) Get(number string) (Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// Resolve returns the chart account governing a balance account number:
// the longest chart number that prefixes it.
func (s *Service) Resolve(number string) (Account, bool) {
	var best Account
	found := false
	for _, a := range s.accounts {
		if strings.HasPrefix(number, a.Number) {
			if !found || len(a.Number) > len(best.Number) {
				best = a
				found = true
			}
		}
	}
	return best, found
}

// Known reports whether a balance account attaches to the chart.
func (s *Service) Known(number string) bool {
	_, ok := s.Resolve(number)
	return ok
}

// ByClass returns all chart accounts of the given class.
func (s *Service) ByClass(class int) []Account {
	var out []Account
	for _, a := range s.accounts {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

// Forbidden returns the chart accounts marked INTERDIT.
func (s *Service) Forbidden() []Account {
	var out []Account
	for _, a := range s.accounts {
		if a.Usage == UsageForbidden {
			out = append(out, a)
		}
	}
	return out
}

// Closest returns the chart account number nearest to an unknown balance
// account, for suggestion messages. Nearest means the longest shared
// digit prefix, ties broken by chart order.
func (s *Service) Closest(number string) (Account, bool) {
	var best Account
	bestLen := -1
	for _, a := range s.accounts {
		n := sharedPrefixLen(number, a.Number)
		if n > bestLen {
			best = a
			bestLen = n
		}
	}
	return best, bestLen > 0
}

func sharedPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
