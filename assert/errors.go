package assert

import (
	"fmt"
	"slices"
	"strings"
)

// Collector is an error made of many errors, joined by a separator when printed.
// It works with [errors.Is] and [errors.As] for each collected error.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	sep  string
	errs []error
}

// CollectErrors creates a [Collector] that separates errors with sep, or a newline if none is given.
func CollectErrors(sep ...string) *Collector {
	c := &Collector{sep: "\n"}
	if len(sep) > 0 {
		c.sep = sep[0]
	}
	return c
}

// Add collects err, ignoring nil.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// Addf collects an error created with [fmt.Errorf], so "%w" may be used to wrap a sentinel.
func (c *Collector) Addf(format string, args ...any) *Collector {
	return c.Add(fmt.Errorf(format, args...))
}

func (c *Collector) Len() int {
	return len(c.errs)
}

// Result returns nil if nothing was collected, since an empty Collector is still a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, c.sep)
}

func (c *Collector) Unwrap() []error {
	return slices.Clone(c.errs)
}
