package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidOption is wrapped by seeder factories when an option value does
// not parse or is out of range.
var ErrInvalidOption = errors.New("invalid seeder option")

// InvalidOption reports that key=value is unusable; want describes an
// acceptable value.
func InvalidOption(key, value, want string) error {
	return fmt.Errorf("%w %s=%q: want %s", ErrInvalidOption, key, value, want)
}

// ParamType enumerates supported option value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued options.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point options.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean options.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form options such as names and paths.
	ParamTypeString ParamType = "string"
)

// Parameter documents a single option understood by a seeder factory.
type Parameter struct {
	Key         string
	Type        ParamType
	Default     string
	Description string
}

var seederParams = map[string][]Parameter{}

// DescribeSeeder records the options accepted by the named seeder. Seeders
// without a description accept any option.
func DescribeSeeder(name string, params ...Parameter) {
	if name == "" {
		return
	}
	sorted := append([]Parameter(nil), params...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	seederParams[name] = sorted
}

// SeederParams returns the documented options of the named seeder, sorted by
// key, and whether the seeder has been described at all.
func SeederParams(name string) ([]Parameter, bool) {
	p, ok := seederParams[name]
	return p, ok
}

// UnknownOptions returns the keys of opts that the named seeder does not
// document, sorted. The grid size keys "w" and "h" are always accepted.
func UnknownOptions(name string, opts map[string]string) []string {
	params, ok := seederParams[name]
	if !ok {
		return nil
	}
	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p.Key] = true
	}
	var unknown []string
	for k := range opts {
		if k == "w" || k == "h" || known[k] {
			continue
		}
		unknown = append(unknown, k)
	}
	sort.Strings(unknown)
	return unknown
}

func init() {
	DescribeSeeder("dead")
}
