// Package coverage implements spec.md §4.7's coverage map: a per-statement
// hit counter, serializable as JSON with a stable ascending line-number key
// order and mergeable with a prior run's counts by summation. There is no
// direct precedent for this in the teacher codebase (CWBudde-go-dws has no
// coverage tooling); the JSON shape and merge-by-load behavior are
// grounded on spec.md §4.7/§6 directly, built with github.com/tidwall/gjson
// and github.com/tidwall/sjson the way the wider retrieved pack uses them
// for targeted reads/writes into a JSON document without a full unmarshal
// round-trip into a typed struct.
package coverage

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Counter accumulates per-statement hit counts, keyed by line number, with
// one entry per statement index within that line (spec.md §4.7: "a map
// (line_number, statement_index) -> hit_count").
type Counter struct {
	hits       map[int][]int
	sourcePath string
}

// NewCounter creates an empty counter for the given source file.
func NewCounter(sourcePath string) *Counter {
	return &Counter{hits: make(map[int][]int), sourcePath: sourcePath}
}

// Record increments the hit count for statement stmtIndex on line.
func (c *Counter) Record(line, stmtIndex int) {
	slice := c.hits[line]
	if stmtIndex >= len(slice) {
		grown := make([]int, stmtIndex+1)
		copy(grown, slice)
		slice = grown
	}
	slice[stmtIndex]++
	c.hits[line] = slice
}

// HitsFor returns the per-statement hit counts recorded for line, and
// whether line has ever been recorded.
func (c *Counter) HitsFor(line int) ([]int, bool) {
	counts, ok := c.hits[line]
	return counts, ok
}

// Lines returns every line number with at least one recorded hit, sorted
// ascending.
func (c *Counter) Lines() []int {
	lines := make([]int, 0, len(c.hits))
	for ln := range c.hits {
		lines = append(lines, ln)
	}
	sort.Ints(lines)
	return lines
}

// Merge folds other's counts into c by summation (spec.md §4.7: "Loading
// merges with existing counts by summation").
func (c *Counter) Merge(other *Counter) {
	for line, counts := range other.hits {
		existing := c.hits[line]
		width := len(existing)
		if len(counts) > width {
			width = len(counts)
		}
		merged := make([]int, width)
		copy(merged, existing)
		for i, n := range counts {
			merged[i] += n
		}
		c.hits[line] = merged
	}
}

// Load reads a coverage JSON document from path. A missing file is not an
// error — it returns a fresh, empty counter, since "no prior coverage"
// is the common case on a first run.
func Load(path string) (*Counter, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewCounter(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading coverage file %s: %w", path, err)
	}

	c := NewCounter("")
	doc := gjson.ParseBytes(raw)
	c.sourcePath = doc.Get("meta.source_path").String()
	doc.Get("lines").ForEach(func(key, value gjson.Result) bool {
		line, err := strconv.Atoi(key.String())
		if err != nil {
			return true // ignore a malformed key, keep scanning
		}
		counts := make([]int, 0, len(value.Array()))
		for _, v := range value.Array() {
			counts = append(counts, int(v.Int()))
		}
		c.hits[line] = counts
		return true
	})
	return c, nil
}

// Save writes c to path as JSON, with lines in ascending numeric key
// order (spec.md §6 "Stable key order") — Go's encoding/json would sort
// map keys lexicographically ("10" before "2"), so the document is
// assembled by hand and keys are written via sjson.SetRaw/Set in the
// order we choose, not the order a map ranges in.
func (c *Counter) Save(path, sourcePath, timestamp string) error {
	var linesBody strings.Builder
	linesBody.WriteString("{")
	for i, line := range c.Lines() {
		if i > 0 {
			linesBody.WriteString(",")
		}
		fmt.Fprintf(&linesBody, "%q:%s", strconv.Itoa(line), intsToJSONArray(c.hits[line]))
	}
	linesBody.WriteString("}")

	doc := "{}"
	var err error
	if doc, err = sjson.SetRaw(doc, "lines", linesBody.String()); err != nil {
		return fmt.Errorf("encoding coverage lines: %w", err)
	}
	if doc, err = sjson.Set(doc, "meta.source_path", sourcePath); err != nil {
		return fmt.Errorf("encoding coverage meta: %w", err)
	}
	if doc, err = sjson.Set(doc, "meta.timestamp", timestamp); err != nil {
		return fmt.Errorf("encoding coverage meta: %w", err)
	}

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing coverage file %s: %w", path, err)
	}
	return nil
}

func intsToJSONArray(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
