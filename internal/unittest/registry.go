// Package unittest holds the demo tests run by the nostl-tests dispatcher.
// Each test exercises one container feature, prints what it does and checks
// the results.
package unittest

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/pavanmanishd/nostl"
)

var (
	// ErrUnknownContainer is returned by Lookup for an unregistered container.
	ErrUnknownContainer = errors.New("unknown container")
	// ErrUnknownTest is returned by Lookup for a test the container does not define.
	ErrUnknownTest = errors.New("unknown test")
)

// Status codes returned by a Func.
const (
	Passed = 0
	Failed = -1
)

// Env is what a test runs against.
type Env struct {
	Out  io.Writer
	Log  *zap.Logger
	Opts []nostl.Option // vector construction options from configuration
}

// Func runs a test and returns Passed or Failed.
type Func func(env Env) int

// Test is a registered test.
type Test struct {
	Container string
	Name      string
	Desc      string
	Run       Func
}

// Registry maps (container, test) name pairs to tests.
type Registry struct {
	tests map[string]map[string]Test
}

func NewRegistry() *Registry {
	return &Registry{tests: make(map[string]map[string]Test)}
}

// Register adds t, replacing any test registered under the same names.
func (r *Registry) Register(t Test) {
	byName, ok := r.tests[t.Container]
	if !ok {
		byName = make(map[string]Test)
		r.tests[t.Container] = byName
	}
	byName[t.Name] = t
}

// Lookup returns the test registered as (container, name).
func (r *Registry) Lookup(container, name string) (Test, error) {
	byName, ok := r.tests[container]
	if !ok {
		return Test{}, errors.Wrapf(ErrUnknownContainer, "container %q does not exist", container)
	}
	t, ok := byName[name]
	if !ok {
		return Test{}, errors.Wrapf(ErrUnknownTest, "container %q has no test %q defined", container, name)
	}
	return t, nil
}

// Containers returns the registered container names in sorted order.
func (r *Registry) Containers() []string {
	names := lo.Keys(r.tests)
	slices.Sort(names)
	return names
}

// Tests returns the tests of container sorted by name.
func (r *Registry) Tests(container string) []Test {
	tests := lo.Values(r.tests[container])
	slices.SortFunc(tests, func(a, b Test) int {
		return strings.Compare(a.Name, b.Name)
	})
	return tests
}

// WriteList writes every container as a tree of its tests, with their
// descriptions unless brief is set.
func (r *Registry) WriteList(w io.Writer, brief bool) {
	if brief {
		for _, c := range r.Containers() {
			for _, t := range r.Tests(c) {
				fmt.Fprintf(w, "%s %s\n", c, t.Name)
			}
		}
		return
	}

	for i, c := range r.Containers() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, c)
		tests := r.Tests(c)
		for j, t := range tests {
			branch, rail := "+---", "|"
			if j == len(tests)-1 {
				branch, rail = `\---`, " "
			}
			fmt.Fprintln(w, "|")
			fmt.Fprintf(w, "%s%s\n", branch, t.Name)
			fmt.Fprintf(w, "%s       %s\n", rail, t.Desc)
		}
	}
}

// Default returns a registry holding every vector and array test.
func Default() *Registry {
	r := NewRegistry()
	registerVectorTests(r)
	registerArrayTests(r)
	return r
}

// checker collects failed expectations while a test prints its progress.
type checker struct {
	env    Env
	failed bool
}

func newChecker(env Env) *checker {
	if env.Out == nil {
		env.Out = io.Discard
	}
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	return &checker{env: env}
}

func (c *checker) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.env.Out, format, args...)
}

func (c *checker) separator() {
	c.printf("%s\n", strings.Repeat("-", 80))
}

func (c *checker) expect(ok bool, format string, args ...interface{}) {
	if !ok {
		c.failed = true
		msg := fmt.Sprintf(format, args...)
		c.printf("[FAIL] %s\n", msg)
		c.env.Log.Warn("check failed", zap.String("check", msg))
	}
}

func (c *checker) expectString(got fmt.Stringer, want string) {
	c.expect(got.String() == want, "got %s, want %s", got, want)
}

func (c *checker) status() int {
	if c.failed {
		return Failed
	}
	return Passed
}
