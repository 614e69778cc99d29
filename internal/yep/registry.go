package yep

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/JPEWdev/yeps/internal/errors"
)

// VerifyEmailAddresses reconciles authors across the whole record set into a
// mapping from full name to a single canonical email address. An author seen
// with no email maps to the empty string. An author seen with two or more
// distinct emails is a registry-wide failure: the aggregate error lists every
// offending author with all of their conflicting addresses.
func VerifyEmailAddresses(yeps []*YEP) (map[string]string, error) {
	emailsByAuthor := make(map[string]map[string]bool)
	for _, y := range yeps {
		for _, author := range y.Authors {
			if _, ok := emailsByAuthor[author.FullName]; !ok {
				emailsByAuthor[author.FullName] = make(map[string]bool)
			}
			if author.Email == "" {
				continue
			}
			emailsByAuthor[author.FullName][author.Email] = true
		}
	}

	valid := make(map[string]string, len(emailsByAuthor))
	var conflicted []string
	for fullName, emails := range emailsByAuthor {
		if len(emails) > 1 {
			conflicted = append(conflicted, fullName)
			continue
		}
		for email := range emails {
			valid[fullName] = email
		}
		if len(emails) == 0 {
			valid[fullName] = ""
		}
	}

	if len(conflicted) > 0 {
		sort.Strings(conflicted)
		lines := make([]string, 0, len(conflicted))
		for _, fullName := range conflicted {
			emails := make([]string, 0, len(emailsByAuthor[fullName]))
			for email := range emailsByAuthor[fullName] {
				emails = append(emails, email)
			}
			sort.Strings(emails)
			lines = append(lines, fmt.Sprintf("    %s: %s", fullName, strings.Join(emails, ", ")))
		}
		msg := "some authors have more than one email address listed:\n" + strings.Join(lines, "\n")
		return nil, errors.New(errors.CategoryRegistry, errors.SeverityFatal, msg)
	}

	return valid, nil
}

// SortAuthorNames orders author full names by surname for the owner roster.
func SortAuthorNames(authors map[string]string) []string {
	names := make([]string, 0, len(authors))
	for name := range authors {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ki, kj := authorSortKey(names[i]), authorSortKey(names[j])
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
	return names
}

// authorSortKey skips lower-cased particles ("van", "de") in the surname when
// sorting. The surname portion is whatever precedes the first comma.
func authorSortKey(fullName string) string {
	surname, _, _ := strings.Cut(fullName, ",")
	parts := strings.Fields(surname)
	for i, part := range parts {
		if unicode.IsUpper([]rune(part)[0]) {
			return norm.NFKD.String(strings.ToLower(strings.Join(parts[i:], " ")))
		}
	}
	// No capitalized token; use the whole lower-cased surname.
	return norm.NFKD.String(strings.ToLower(surname))
}
